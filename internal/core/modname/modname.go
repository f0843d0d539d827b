// Package modname holds the module naming rule shared by every registry surface
package modname

import "regexp"

// Pattern is the accepted shape of a module name: 3 to 40 chars of lower case
// ascii letters, digits and underscores
const Pattern = `^[a-z0-9_]{3,40}$`

var re = regexp.MustCompile(Pattern)

// Valid reports whether name is an acceptable module name
func Valid(name string) bool { return re.MatchString(name) }
