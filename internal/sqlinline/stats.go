package sqlinline

const QStatsSummary = `--sql 940842bb-27c4-4838-8225-6c1d31233384
select
  (select count(*) from events)                                                  as total_events,
  (select count(*) from events where status = 'upcoming')                        as upcoming_events,
  (select count(*) from donations)                                               as total_donations,
  (select coalesce(sum(amount), 0)::text from donations
    where status = 'completed')                                                  as total_donations_amount,
  (select count(*) from volunteer_applications)                                  as total_applications,
  (select count(*) from volunteer_applications where status = 'pending')         as pending_applications;
`
