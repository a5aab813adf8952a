package sqlinline

const QInsertEvent = `--sql fb8af5a9-bea4-460a-8608-8ba541101949
insert into events (id, title, description, date, location, capacity, registered, status, image_url, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::timestamptz, $4::text, $5::int, 0, $6::text, $7::text, now())
returning id, title, description, date, location, capacity, registered, status, image_url, created_at;
`

const QSelectEventByID = `--sql 5621918d-339f-4666-9cae-ac2d872aa7af
select id, title, description, date, location, capacity, registered, status, image_url, created_at
from events
where id = $1::uuid
limit 1;
`

const QListEvents = `--sql 13c848fe-c69c-42e4-8825-d7bd1c3e398b
select id, title, description, date, location, capacity, registered, status, image_url, created_at
from events
order by date desc;
`

const QUpdateEvent = `--sql 2f6e5b41-e84f-4d0b-ba58-bb1215150457
update events
set title       = coalesce($2::text, title),
    description = coalesce($3::text, description),
    date        = coalesce($4::timestamptz, date),
    location    = coalesce($5::text, location),
    capacity    = coalesce($6::int, capacity),
    status      = coalesce($7::text, status),
    image_url   = coalesce($8::text, image_url)
where id = $1::uuid
returning id, title, description, date, location, capacity, registered, status, image_url, created_at;
`

const QDeleteEvent = `--sql 98c8d10a-ae71-4b1d-8c31-4f533af171b8
delete from events
where id = $1::uuid;
`

// QIncrementEventRegistered is the capacity guard: the increment only lands
// when the counter is still below capacity, in one statement, so concurrent
// registrations can never push registered past capacity.
const QIncrementEventRegistered = `--sql 69104af7-8268-4ae9-8a98-60ff15ca9b3d
update events
set registered = registered + 1
where id = $1::uuid
  and registered < capacity;
`
