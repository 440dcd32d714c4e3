package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[@$!%*?&].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexContainAtLeastOneLowercase   = `.*[a-z].*`
	RegexContainAtLeastOneDigit       = `.*\d.*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric                      = `^\d+$`
	// Local cell phones are 09xxxxxxxx; the international variant carries
	// the Ecuador country code plus the mobile prefix.
	RegexPhoneEcuador = `^(09\d{8}|\+5939\d{8})$`
	// Person names: letters, spaces, apostrophes, hyphens, dots and
	// Spanish accented characters.
	RegexPersonName = `^[A-Za-zÁÉÍÓÚáéíóúÑñÜü\s.'-]+$`
	// Doctor names admit an optional honorific up front.
	RegexDoctorName = `^(Dr\.|Dra\.)?\s*[A-Za-zÁÉÍÓÚáéíóúÑñÜü]+(\s+[A-Za-zÁÉÍÓÚáéíóúÑñÜü]+)*$`
)
