package models

// VisibleFields returns the set of form fields that should be shown for the
// current form state. Conditional sub-fields (the insurance block) toggle on
// their sibling field, independent of any rendering concern.
func VisibleFields(identity PatientIdentity) map[string]bool {
	fields := map[string]bool{
		"first_name":           true,
		"last_name":            true,
		"date_of_birth":        true,
		"mother_name":          true,
		"father_name":          true,
		"cpf":                  true,
		"cns":                  true,
		"rg":                   true,
		"gender":               true,
		"race_color":           true,
		"marital_status":       true,
		"education_level":      true,
		"phone":                true,
		"email":                true,
		"zip_code":             true,
		"address":              true,
		"allergies":            true,
		"medical_history":      true,
		"has_health_insurance": true,
	}

	if identity.HasHealthInsurance {
		fields["insurance_provider"] = true
		fields["insurance_number"] = true
	}

	return fields
}
