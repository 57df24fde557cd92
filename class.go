package minimal

import "strings"

// The class attribute is handled as a string, not as a token list.

func hasClass(cls, name string) bool {
	return strings.Contains(cls, name)
}

func addClass(cls, name string) string {
	return cls + " " + name
}

// removeClass only matches name after a space, so a leading token stays.
func removeClass(cls, name string) string {
	return strings.Replace(cls, " "+name, "", 1)
}
