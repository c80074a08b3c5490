package update

const helpMarkdown = `# habitd

Track habits per calendar day. A habit is scheduled either on specific
weekdays or by a weekly frequency target; frequency habits fold away for the
rest of the week once their quota is met.

## Navigation

| Key | Action |
| --- | ------ |
| h / l | previous / next day |
| j / k | next / previous habit |
| m / w | month / week view |

## Actions

| Key | Action |
| --- | ------ |
| space | toggle the selected habit on the focused day |
| n | new habit |
| e | edit the selected habit |
| d | delete the selected habit |
| t | switch theme |
| ? | close this help |
| q | quit |

In the habit form, tab switches between the name field and the schedule;
digits 0 (Sunday) through 6 (Saturday) toggle specific weekdays, and +/-
adjusts the weekly frequency when no weekday is selected.
`
