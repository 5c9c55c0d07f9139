package courier

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone: "+" и от 8 до 15 цифр (E.164).
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	digits := phone[1:]
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}
	for _, char := range digits {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidLicense(number string) bool {
	number = strings.TrimSpace(number)
	return number != "" && len(number) <= 32
}
