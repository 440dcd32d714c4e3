package utils

import (
	"math"
	"policlinico-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRegex      = regexp.MustCompile(constvars.RegexEmail)
	numericRegex    = regexp.MustCompile(constvars.RegexNumeric)
	phoneRegex      = regexp.MustCompile(constvars.RegexPhoneEcuador)
	personNameRegex = regexp.MustCompile(constvars.RegexPersonName)
	doctorNameRegex = regexp.MustCompile(constvars.RegexDoctorName)

	lowercaseRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	uppercaseRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	digitRegex     = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	specialRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
)

var roleEmailDomains = map[string]string{
	constvars.RoleAdmin:  constvars.RoleDomainAdmin,
	constvars.RoleDoctor: constvars.RoleDomainDoctor,
	constvars.RoleNurse:  constvars.RoleDomainNurse,
}

// ValidateCedula implements the Ecuadorian 10-digit national ID check:
// province code 01-24, third digit below 6 (natural person), and the
// modulus-10 checksum with alternating coefficients over the first 9 digits.
func ValidateCedula(cedula string) bool {
	c := strings.TrimSpace(cedula)
	if len(c) != 10 || !numericRegex.MatchString(c) {
		return false
	}

	province, _ := strconv.Atoi(c[:2])
	if province < 1 || province > 24 {
		return false
	}
	if int(c[2]-'0') >= 6 {
		return false
	}

	coefficients := []int{2, 1, 2, 1, 2, 1, 2, 1, 2}
	sum := 0
	for i := 0; i < 9; i++ {
		product := int(c[i]-'0') * coefficients[i]
		if product >= 10 {
			product -= 9
		}
		sum += product
	}
	expected := (10 - sum%10) % 10
	return expected == int(c[9]-'0')
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateEmailForRole requires the email domain to equal the institutional
// domain bound to the role (admin, medico, enfermera), case-insensitively.
func ValidateEmailForRole(email, role string) bool {
	if !ValidateEmail(email) {
		return false
	}
	required, ok := roleEmailDomains[role]
	if !ok {
		return false
	}
	parts := strings.SplitN(strings.TrimSpace(email), "@", 2)
	if len(parts) != 2 {
		return false
	}
	return strings.EqualFold(parts[1], required)
}

// ValidateInstitutionalEmail admits any address whose domain is the
// institution's, including the student subdomain.
func ValidateInstitutionalEmail(email string) bool {
	if !ValidateEmail(email) {
		return false
	}
	parts := strings.SplitN(strings.TrimSpace(email), "@", 2)
	if len(parts) != 2 {
		return false
	}
	domain := strings.ToLower(parts[1])
	return domain == "uleam.edu.ec" || domain == "live.uleam.edu.ec" ||
		strings.HasSuffix(domain, ".uleam.edu.ec")
}

// ValidatePhoneStrict accepts 09xxxxxxxx or the +5939xxxxxxxx international
// variant, with no separators.
func ValidatePhoneStrict(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidatePhone tolerates spaces and dashes, as in "+593 9 123 4567".
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return ValidatePhoneStrict(cleaned)
}

func ValidateName(name string) bool {
	n := strings.TrimSpace(name)
	if len([]rune(n)) < 2 {
		return false
	}
	return personNameRegex.MatchString(n)
}

func ValidateDoctorName(name string) bool {
	return doctorNameRegex.MatchString(strings.TrimSpace(name))
}

// NormalizeDoctorName prefixes the honorific when missing. Without a better
// signal the heuristic of the original is kept: common feminine first names
// get Dra., everything else Dr.
func NormalizeDoctorName(name string) string {
	n := strings.TrimSpace(name)
	if strings.HasPrefix(n, "Dr.") || strings.HasPrefix(n, "Dra.") {
		return n
	}
	if strings.Contains(n, "María") || strings.Contains(n, "Ana") {
		return "Dra. " + n
	}
	return "Dr. " + n
}

// parseFlexibleDate accepts the date and datetime-local shapes the forms
// submit, plus RFC3339 for stored values.
func parseFlexibleDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		constvars.TimeLayoutDate,
		constvars.TimeLayoutDateTime,
		time.RFC3339,
	} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CalculateAge returns whole years between birth and now, adjusted when the
// birthday has not happened yet this year.
func CalculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AgeFromBirthDate parses and derives the age; ok is false for malformed
// input.
func AgeFromBirthDate(value string) (int, bool) {
	birth, ok := parseFlexibleDate(value)
	if !ok {
		return 0, false
	}
	return CalculateAge(birth, time.Now()), true
}

// ValidateBirthDate requires a parseable date strictly in the past with a
// derived age between 0 and 130.
func ValidateBirthDate(value string) bool {
	birth, ok := parseFlexibleDate(value)
	if !ok {
		return false
	}
	now := time.Now()
	if !birth.Before(now) {
		return false
	}
	age := CalculateAge(birth, now)
	return age >= 0 && age <= constvars.PatientAgeMax
}

// ValidateNotPastDateTime admits dates from now on, tolerating a minute of
// clock or input skew.
func ValidateNotPastDateTime(value string) bool {
	t, ok := parseFlexibleDate(value)
	if !ok {
		return false
	}
	floor := time.Now().Add(-constvars.PastDateToleranceSeconds * time.Second)
	return !t.Before(floor)
}

// WithinAppointmentHorizon rejects dates beyond the scheduling window.
func WithinAppointmentHorizon(value string) bool {
	t, ok := parseFlexibleDate(value)
	if !ok {
		return false
	}
	horizon := time.Now().AddDate(0, constvars.AppointmentHorizonMonths, 0)
	return !t.After(horizon)
}

// ValidateDateRange holds when both ends parse and start <= end. Missing
// ends are not an error; the caller decides whether the range is required.
func ValidateDateRange(from, to string) bool {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return true
	}
	start, okFrom := parseFlexibleDate(from)
	end, okTo := parseFlexibleDate(to)
	if !okFrom || !okTo {
		return false
	}
	return !start.After(end)
}

// ParseDecimal accepts the comma decimal separator used by the forms.
func ParseDecimal(value string) (float64, bool) {
	v := strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func ValidateNumberInRange(value string, min, max float64) bool {
	n, ok := ParseDecimal(value)
	if !ok {
		return false
	}
	return n >= min && n <= max
}

func ValidatePositiveNumber(value string) bool {
	n, ok := ParseDecimal(value)
	return ok && n > 0
}

// ValidatePassword requires length 8 plus lowercase, uppercase, digit and
// one special character from the fixed set.
func ValidatePassword(password string) bool {
	return len(password) >= 8 &&
		lowercaseRegex.MatchString(password) &&
		uppercaseRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		specialRegex.MatchString(password)
}

type PasswordEvaluation struct {
	Valid   bool     `json:"valid"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// EvaluatePassword scores 0-6 and reports every missing requirement; valid
// from score 4 up.
func EvaluatePassword(password string) PasswordEvaluation {
	eval := PasswordEvaluation{Reasons: []string{}}
	if password == "" {
		eval.Reasons = append(eval.Reasons, "password is empty")
		return eval
	}
	if len(password) >= 8 {
		eval.Score++
	} else {
		eval.Reasons = append(eval.Reasons, "must be at least 8 characters long")
	}
	if len(password) >= 12 {
		eval.Score++
	}
	if lowercaseRegex.MatchString(password) {
		eval.Score++
	} else {
		eval.Reasons = append(eval.Reasons, "must include lowercase letters")
	}
	if uppercaseRegex.MatchString(password) {
		eval.Score++
	} else {
		eval.Reasons = append(eval.Reasons, "must include uppercase letters")
	}
	if digitRegex.MatchString(password) {
		eval.Score++
	} else {
		eval.Reasons = append(eval.Reasons, "must include digits")
	}
	if specialRegex.MatchString(password) {
		eval.Score++
	} else {
		eval.Reasons = append(eval.Reasons, "must include special characters (e.g. @$!%*?&)")
	}
	eval.Valid = eval.Score >= constvars.PasswordMinimumScore
	return eval
}

// CalculateBMI returns weight(kg)/height(m)^2 rounded to two decimals, or 0
// when the pair is implausible.
func CalculateBMI(weightKg, heightM float64) float64 {
	if weightKg < constvars.WeightMinKg || weightKg > constvars.WeightMaxKg {
		return 0
	}
	if heightM < constvars.HeightMinM || heightM > constvars.HeightMaxM {
		return 0
	}
	bmi := weightKg / (heightM * heightM)
	// The quotient can land a hair under an exact half in binary floating
	// point (120/1.60² is 46.874999…); nudge before rounding half up.
	return math.Round(bmi*100+1e-9) / 100
}

// ClassifyBMI partitions (0, inf) into the six contiguous bands. Values at
// or below zero classify as empty.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Bajo peso"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Sobrepeso"
	case bmi < 35:
		return "Obesidad I"
	case bmi < 40:
		return "Obesidad II"
	default:
		return "Obesidad III"
	}
}

// ValidateWeeklyRanges checks one day's slots, given as [from, to] pairs in
// HH:MM: every range parseable with end > start, and no pair overlapping.
func ValidateWeeklyRanges(ranges [][2]string) bool {
	type minuteRange struct{ from, to int }
	toMinutes := func(v string) (int, bool) {
		t, err := time.Parse(constvars.TimeLayoutClock, v)
		if err != nil {
			return 0, false
		}
		return t.Hour()*60 + t.Minute(), true
	}

	parsed := make([]minuteRange, 0, len(ranges))
	for _, r := range ranges {
		from, okFrom := toMinutes(r[0])
		to, okTo := toMinutes(r[1])
		if !okFrom || !okTo || to <= from {
			return false
		}
		parsed = append(parsed, minuteRange{from, to})
	}
	for i := 1; i < len(parsed); i++ {
		for j := 0; j < i; j++ {
			if parsed[i].from < parsed[j].to && parsed[j].from < parsed[i].to {
				return false
			}
		}
	}
	return true
}
