package sqlinline

const QInsertApplication = `--sql b4420a6c-6078-4325-a58b-b0e582baca65
insert into volunteer_applications (id, user_id, interests, availability, message, status, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, $4::text, 'pending', now())
returning id, user_id, interests, availability, message, status, created_at;
`

const QSelectApplicationByUser = `--sql 423c6f3b-4b7b-467a-88f6-8432ad1b00d8
select id, user_id, interests, availability, message, status, created_at
from volunteer_applications
where user_id = $1::uuid
limit 1;
`

const QListApplications = `--sql 601ca40e-8220-4e4b-84c4-dd649ec1f565
select id, user_id, interests, availability, message, status, created_at
from volunteer_applications
order by created_at desc;
`

// QSelectApplicationForUpdate locks the row for the duration of the review
// transaction so concurrent reviews serialize.
const QSelectApplicationForUpdate = `--sql e4b50ff4-5e73-4957-8203-9947ebf5230b
select id, user_id, interests, availability, message, status, created_at
from volunteer_applications
where id = $1::uuid
for update;
`

const QUpdateApplicationStatus = `--sql 48df94ea-ae3c-4b8a-8cca-de49f5c24730
update volunteer_applications
set status = $2::text
where id = $1::uuid;
`
