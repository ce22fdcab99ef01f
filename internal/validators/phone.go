package validators

import "regexp"

// Same shape the registration form has always accepted:
// optional +, optional leading 1, 9-15 digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}
