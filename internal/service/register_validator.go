package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/constants"
)

// FieldErrors 表单校验错误（字段 -> 提示文案）
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

var usernameStartsWithLetter = regexp.MustCompile(`^[a-zA-Z]`)
var usernameOnlyEnglishLetters = regexp.MustCompile(`^[a-zA-Z]+$`)
var passwordSpecialChar = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>\[\];'\\/_=+\-\s]`)

// citiesStreets 可选城市与街道（街道标识为小写连字符形式）
var citiesStreets = map[string][]string{
	"new-york": {
		"Broadway", "Park Avenue", "Madison Avenue", "5th Avenue", "Wall Street",
		"Central Park West", "Lexington Avenue", "Broadway", "Columbus Avenue", "York Avenue",
	},
	"los-angeles": {
		"Sunset Boulevard", "Wilshire Boulevard", "Hollywood Boulevard", "Santa Monica Boulevard", "Melrose Avenue",
		"Rodeo Drive", "Ventura Boulevard", "Sepulveda Boulevard", "La Cienega Boulevard", "Fairfax Avenue",
	},
	"chicago": {
		"Michigan Avenue", "State Street", "Rush Street", "Division Street", "North Avenue",
		"Lincoln Avenue", "Broadway", "Clark Street", "Wells Street", "Halsted Street",
	},
}

// StreetValue 街道展示名转标识值
func StreetValue(street string) string {
	return strings.Join(strings.Fields(strings.ToLower(street)), "-")
}

func validateUsername(username string, errs FieldErrors) {
	username = strings.TrimSpace(username)
	switch {
	case len(username) < 3:
		errs["login"] = "Username must be at least 3 characters long"
	case !usernameStartsWithLetter.MatchString(username):
		errs["login"] = "Username must start with a letter"
	case !usernameOnlyEnglishLetters.MatchString(username):
		errs["login"] = "Username must contain only English letters"
	}
}

func validatePassword(password string, errs FieldErrors) {
	switch {
	case len(password) < 6:
		errs["password"] = "Password must be at least 6 characters long"
	case !passwordSpecialChar.MatchString(password):
		errs["password"] = "Password must contain at least 1 special character"
	}
}

// ValidateLogin 登录表单校验
func ValidateLogin(req catalog.LoginRequest) error {
	errs := FieldErrors{}
	validateUsername(req.Login, errs)
	validatePassword(req.Password, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRegister 注册表单校验
// 全部规则在本地拦截，任一字段失败都不转发远端。
func ValidateRegister(req catalog.RegisterRequest) error {
	errs := FieldErrors{}
	validateUsername(req.Login, errs)
	validatePassword(req.Password, errs)

	if req.ConfirmPassword != req.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	streets, cityKnown := citiesStreets[req.City]
	if req.City == "" {
		errs["city"] = "Please select a city"
	} else if !cityKnown {
		errs["city"] = "Unknown city"
	}

	if req.Street == "" {
		errs["street"] = "Please select a street"
	} else if cityKnown {
		found := false
		for _, street := range streets {
			if StreetValue(street) == req.Street {
				found = true
				break
			}
		}
		if !found {
			errs["street"] = "Street does not belong to the selected city"
		}
	}

	if req.HouseNumber <= 1 {
		errs["houseNumber"] = "House number must be greater than 1"
	}

	if req.PaymentMethod != constants.PaymentMethodCash && req.PaymentMethod != constants.PaymentMethodCard {
		errs["paymentMethod"] = "Please select a payment method"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
