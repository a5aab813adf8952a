package sqlinline

const QInsertUser = `--sql a5c04f27-5591-4329-b163-0b5c513d5a01
insert into users (id, name, email, password, role, created_at)
values (gen_random_uuid(), $1::text, lower($2::text), $3::text, $4::text, now())
returning id, name, email, password, role, created_at;
`

const QSelectUserByID = `--sql 4641bf9a-e81c-4290-9dc7-d92c9aaa931a
select id, name, email, password, role, created_at
from users
where id = $1::uuid
limit 1;
`

const QSelectUserByEmail = `--sql 2e3094b4-d3e3-4928-b020-1601900ebfb5
select id, name, email, password, role, created_at
from users
where email = lower($1::text)
limit 1;
`

const QUpdateUserRole = `--sql 52a6895d-0303-425c-a110-1f55812d2a5f
update users
set role = $2::text
where id = $1::uuid;
`
