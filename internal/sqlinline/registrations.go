package sqlinline

const QInsertRegistration = `--sql a303f77c-1a59-4cab-9605-435622c0aa52
insert into event_registrations (id, user_id, event_id, registered_at)
values (gen_random_uuid(), $1::uuid, $2::uuid, now())
returning id, user_id, event_id, registered_at;
`

const QRegistrationExists = `--sql 2b5391bb-9839-447e-85b0-6ace070a40e3
select exists (
    select 1
    from event_registrations
    where user_id = $1::uuid
      and event_id = $2::uuid
);
`

const QListUserRegistrations = `--sql 71884397-23ba-42fd-92d0-fa03133cb0fb
select r.id, r.user_id, r.event_id, r.registered_at,
       e.id, e.title, e.description, e.date, e.location, e.capacity, e.registered, e.status, e.image_url, e.created_at
from event_registrations r
join events e on e.id = r.event_id
where r.user_id = $1::uuid
order by r.registered_at desc;
`
