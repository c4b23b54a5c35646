package cube

import "fmt"

// assertf panics when cond is false. Callers guard it with debugAssertions
// so release builds compile the checks away.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("cube: "+format, args...))
	}
}
