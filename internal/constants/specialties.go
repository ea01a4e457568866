package constants

import "strings"

// Specialties contém as especialidades aceitas nos filtros e perfis
var Specialties = []string{
	"cardiology",
	"dermatology",
	"emergency",
	"endocrinology",
	"gastroenterology",
	"general",
	"infectious",
	"nephrology",
	"neurology",
	"oncology",
	"pediatrics",
	"psychiatry",
	"pulmonology",
	"radiology",
	"surgery",
}

// IsValidSpecialty verifica se a especialidade (já normalizada) é conhecida
func IsValidSpecialty(specialty string) bool {
	for _, s := range Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}
