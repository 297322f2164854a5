package patterns

import (
	"regexp"
	"sync"
)

// Result is the outcome of reading a capture group: either Some(value) or
// Absent. Every pattern read in the module goes through this type, so a
// missing match, an out-of-range group index, a group that did not
// participate in the match, or an invalid pattern all collapse to Absent
// instead of panicking or erroring.
type Result struct {
	value string
	ok    bool
}

// Absent is the zero Result.
var Absent = Result{}

func Some(value string) Result {
	return Result{value: value, ok: true}
}

// Ok reports whether a value is present.
func (r Result) Ok() bool { return r.ok }

// Value returns the captured string, or "" when absent.
func (r Result) Value() string { return r.value }

// Or returns the captured string, or def when absent.
func (r Result) Or(def string) string {
	if r.ok {
		return r.value
	}
	return def
}

// compiled caches pattern compilation, including failures, so a malformed
// pattern is rejected once and stays rejected.
var compiled = struct {
	sync.RWMutex
	m map[string]*regexp.Regexp
}{m: make(map[string]*regexp.Regexp)}

func compile(expr string) *regexp.Regexp {
	compiled.RLock()
	re, seen := compiled.m[expr]
	compiled.RUnlock()
	if seen {
		return re
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		re = nil
	}
	compiled.Lock()
	compiled.m[expr] = re
	compiled.Unlock()
	return re
}

// SearchGroup runs expr over text and returns capture group idx. It never
// panics: compile failure, no match, idx out of range, and an empty or
// non-participating group all yield Absent.
func SearchGroup(expr, text string, idx int) Result {
	re := compile(expr)
	if re == nil || idx < 0 {
		return Absent
	}
	m := re.FindStringSubmatch(text)
	if m == nil || idx >= len(m) {
		return Absent
	}
	if m[idx] == "" {
		return Absent
	}
	return Some(m[idx])
}

// SearchGroups returns the requested capture groups from the first match of
// expr. Any group that is missing for any reason is Absent; the slice always
// has len(idxs) entries.
func SearchGroups(expr, text string, idxs ...int) []Result {
	out := make([]Result, len(idxs))
	re := compile(expr)
	if re == nil {
		return out
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return out
	}
	for i, idx := range idxs {
		if idx < 0 || idx >= len(m) || m[idx] == "" {
			continue
		}
		out[i] = Some(m[idx])
	}
	return out
}

// FindAll returns every match of expr with its capture groups, or nil when
// the pattern is invalid or nothing matches.
func FindAll(expr, text string) [][]string {
	re := compile(expr)
	if re == nil {
		return nil
	}
	return re.FindAllStringSubmatch(text, -1)
}
