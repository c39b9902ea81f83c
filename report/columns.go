package report

import "github.com/tsawler/labreport/model"

// Record keys shared with the record source.
const (
	KeyID             = "id"
	KeyName           = "name"
	KeyIdentification = "identification_number"
	KeyDateOfBirth    = "date_of_birth"
	KeyGender         = "gender"
	KeyAddress        = "address"
	KeyPhone          = "phone"

	KeyTestRecordID = "prueba_id"
	KeyPatientID    = "patient_id"
	KeyPatientName  = "patient_name"
	KeyTestID       = "test_id"
	KeyTestName     = "test_name"
	KeyTestCode     = "test_code"
	KeyDescription  = "test_description"
	KeyCategory     = "test_category"
	KeyMethod       = "test_method"
	KeyTestDate     = "test_date"
	KeyResult       = "result"
	KeyResultDate   = "result_date"
	KeyLaboratory   = "laboratory"
)

// PatientColumns is the column table of the patient listing.
func PatientColumns() model.Columns {
	return model.Columns{
		{Key: KeyName, Label: "Nombre", Width: 50, Wrap: true, CharsPerLine: 30},
		{Key: KeyIdentification, Label: "Carnet de Identidad", Width: 40, Align: model.AlignCenter},
		{Key: KeyDateOfBirth, Label: "Fecha Nacimiento", Width: 35, Align: model.AlignCenter},
		{Key: KeyGender, Label: "Género", Width: 25, Align: model.AlignCenter},
		{Key: KeyAddress, Label: "Dirección", Width: 80, Wrap: true, CharsPerLine: 40},
		{Key: KeyPhone, Label: "Teléfono", Width: 40, Align: model.AlignCenter},
	}
}

// TestColumns is the column table of the test listing.
func TestColumns() model.Columns {
	return model.Columns{
		{Key: KeyPatientName, Label: "Paciente", Width: 45, Wrap: true, CharsPerLine: 25},
		{Key: KeyTestName, Label: "Prueba", Width: 40, Wrap: true, CharsPerLine: 25},
		{Key: KeyTestCode, Label: "Código", Width: 30, Align: model.AlignCenter},
		{Key: KeyTestDate, Label: "Fecha Prueba", Width: 35, Align: model.AlignCenter},
		{Key: KeyResult, Label: "Resultado", Width: 35, Align: model.AlignCenter},
		{Key: KeyResultDate, Label: "Fecha Resultado", Width: 35, Align: model.AlignCenter},
		{Key: KeyLaboratory, Label: "Laboratorio", Width: 50, Wrap: true, CharsPerLine: 30},
	}
}

// DetailPatientFields are the label lines of the patient block of the detail report.
func DetailPatientFields() model.Columns {
	return model.Columns{
		{Key: KeyPatientName, Label: "Nombre Completo:"},
		{Key: KeyIdentification, Label: "Número de Identificación:"},
		{Key: KeyDateOfBirth, Label: "Fecha de Nacimiento:"},
		{Key: KeyGender, Label: "Género:"},
		{Key: KeyAddress, Label: "Dirección:", LongText: true, CharsPerLine: 50},
		{Key: KeyPhone, Label: "Teléfono:"},
	}
}

// DetailTestFields are the label lines of the test block of the detail report.
func DetailTestFields() model.Columns {
	return model.Columns{
		{Key: KeyTestName, Label: "Nombre de la Prueba:"},
		{Key: KeyTestCode, Label: "Código de Prueba:"},
		{Key: KeyCategory, Label: "Categoría:"},
		{Key: KeyMethod, Label: "Método:"},
		{Key: KeyDescription, Label: "Descripción:", LongText: true, CharsPerLine: 50},
		{Key: KeyTestDate, Label: "Fecha de Realización:"},
		{Key: KeyResultDate, Label: "Fecha de Resultado:"},
		{Key: KeyLaboratory, Label: "Laboratorio:"},
	}
}

// Columns returns the table columns of a listing kind, or nil for the detail report.
func (k Kind) Columns() model.Columns {
	switch k {
	case KindPatients:
		return PatientColumns()
	case KindTests:
		return TestColumns()
	}
	return nil
}
