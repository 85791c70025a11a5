package password

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-api/internal/domain"
)

// MinLength longitud mínima aceptada para contraseñas.
const MinLength = 8

// commonPasswords subconjunto de las contraseñas más usadas (comparación en minúsculas).
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "qwerty123": {},
	"qwertyuiop": {}, "letmein1": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "superman": {},
	"welcome1": {}, "admin123": {}, "abc12345": {}, "trustno1": {},
	"dragon123": {}, "monkey123": {}, "shadow123": {}, "master123": {},
	"changeme": {}, "whatever": {}, "asdfghjkl": {}, "zaq12wsx": {},
}

// Validate aplica la política de contraseñas de forma determinista:
// longitud mínima, no solo dígitos, no contraseña común y no demasiado
// parecida a los atributos del usuario (email, nombres). Acumula todos los
// mensajes en un ValidationError con campo "password".
func Validate(plain string, attrs ...string) error {
	ve := &domain.ValidationError{}
	if len(plain) < MinLength {
		ve.Add("password", "This password is too short. It must contain at least 8 characters.")
	}
	if plain != "" && isEntirelyNumeric(plain) {
		ve.Add("password", "This password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(plain)]; ok {
		ve.Add("password", "This password is too common.")
	}
	if tooSimilar(plain, attrs) {
		ve.Add("password", "The password is too similar to your personal information.")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tooSimilar compara la contraseña con cada atributo sin distinguir mayúsculas.
// Un atributo cuenta como similar si uno contiene al otro. Para emails también
// se compara la parte local (antes de la @).
func tooSimilar(plain string, attrs []string) bool {
	p := strings.ToLower(plain)
	if p == "" {
		return false
	}
	for _, attr := range attrs {
		a := strings.ToLower(strings.TrimSpace(attr))
		if a == "" || len(a) < 3 {
			continue
		}
		if strings.Contains(p, a) || strings.Contains(a, p) {
			return true
		}
		if local, _, ok := strings.Cut(a, "@"); ok && len(local) >= 3 {
			if strings.Contains(p, local) || strings.Contains(local, p) {
				return true
			}
		}
	}
	return false
}

// Hash deriva el hash bcrypt de una contraseña ya validada.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara una contraseña en claro contra su hash bcrypt.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
