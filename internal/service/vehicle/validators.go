package vehicle

import (
	"regexp"
	"strings"
)

// чилийские номера: BBBB12 (новые) и BB1234 (старые), допускаем и иностранные до 8 знаков
var plateRe = regexp.MustCompile(`^[A-Z0-9]{5,8}$`)

func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.NewReplacer("-", "", " ", "", "·", "").Replace(plate)
}

func isValidPlate(plate string) bool {
	return plateRe.MatchString(plate)
}
