package practicum

import "fmt"

// homeworkVerdicts is the fixed verdict table. It is not configurable.
var homeworkVerdicts = map[string]string{
	"approved":  "work reviewed: reviewer liked everything",
	"reviewing": "work has been taken up for review",
	"rejected":  "work reviewed: reviewer has remarks",
}

// ParseStatus renders one homework record into the notification line.
func ParseStatus(hw any) (string, error) {
	rec, ok := hw.(map[string]any)
	if !ok {
		return "", &FormatError{Msg: "homework record is not a JSON object"}
	}

	rawStatus, ok := rec["status"]
	if !ok {
		return "", &MissingFieldError{Key: "status"}
	}
	status, ok := rawStatus.(string)
	if !ok {
		return "", &FormatError{Msg: `key "status" is not a string`}
	}

	rawName, ok := rec["homework_name"]
	if !ok {
		return "", &MissingFieldError{Key: "homework_name"}
	}
	name, ok := rawName.(string)
	if !ok {
		return "", &FormatError{Msg: `key "homework_name" is not a string`}
	}

	verdict, ok := homeworkVerdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	return fmt.Sprintf("Changed review status of work %q. %s", name, verdict), nil
}
