package sqlinline

const QInsertContact = `--sql ebc355c4-84b8-4259-8676-8507c44416a1
insert into contact_submissions (id, name, email, subject, message, status, country, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, 'new', $5::text, now())
returning id, name, email, subject, message, status, country, created_at;
`

const QListContacts = `--sql a881e865-6798-46dc-9767-42748f461959
select id, name, email, subject, message, status, country, created_at
from contact_submissions
order by created_at desc;
`

const QUpdateContactStatus = `--sql 54c4f3aa-dd46-4e13-a56d-9fb8be6c1184
update contact_submissions
set status = $2::text
where id = $1::uuid
returning id, name, email, subject, message, status, country, created_at;
`
