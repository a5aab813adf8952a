package sqlinline

const QInsertDonation = `--sql 3159957b-88d4-4af4-9788-d111fb372c2d
insert into donations (id, user_id, amount, status, payment_id, created_at)
values (gen_random_uuid(), $1::uuid, $2::numeric, $3::text, $4::text, now())
returning id, user_id, amount::text, status, payment_id, created_at;
`

const QListDonations = `--sql a87bd220-d70a-45e1-a6aa-e219f6fb1466
select id, user_id, amount::text, status, payment_id, created_at
from donations
order by created_at desc;
`

const QListUserDonations = `--sql 5f7ddb26-3d52-49f6-a613-8b9f84d6e415
select id, user_id, amount::text, status, payment_id, created_at
from donations
where user_id = $1::uuid
order by created_at desc;
`

// QTotalCompletedDonations sums completed donations in SQL and returns the
// total as text, so the amount never passes through a float.
const QTotalCompletedDonations = `--sql da8594c3-f6eb-445d-819c-1c0894d8d5f9
select coalesce(sum(amount), 0)::text
from donations
where status = 'completed';
`
