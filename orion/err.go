package orion

import "fmt"

// Handle panics with a message built from desc and args if err is not nil.
// It is meant for startup code where a failure cannot be recovered from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
