package tax

// Field nombra un campo de entrada del formulario.
type Field string

const (
	FieldTotalSales     Field = "totalSales"
	FieldDiscountRate   Field = "discountRate"
	FieldDiscountAmount Field = "discountAmount"
	FieldTotalPurchase  Field = "totalPurchase"
	FieldTotalPeople    Field = "totalPeople"
	FieldCardHolders    Field = "cardHolders"
	FieldPerPerson      Field = "perPerson"
	FieldAddedVat       Field = "addedVat"
	FieldWithholdingTax Field = "withholdingTax"
)

// fieldScenarios declara en qué escenarios es visible cada campo.
// Un campo puede pertenecer a más de un escenario.
var fieldScenarios = []struct {
	field     Field
	scenarios []Scenario
}{
	{FieldTotalSales, []Scenario{ScenarioRegular, ScenarioPWD}},
	{FieldDiscountAmount, []Scenario{ScenarioRegular}},
	{FieldDiscountRate, []Scenario{ScenarioPWD}},
	{FieldTotalPurchase, []Scenario{ScenarioPWDGroup}},
	{FieldTotalPeople, []Scenario{ScenarioPWDGroup}},
	{FieldCardHolders, []Scenario{ScenarioPWDGroup}},
	{FieldPerPerson, []Scenario{ScenarioPWDGroup}},
	{FieldAddedVat, []Scenario{ScenarioRegular, ScenarioPWD, ScenarioPWDGroup}},
	{FieldWithholdingTax, []Scenario{ScenarioRegular, ScenarioPWD, ScenarioPWDGroup}},
}

// Fields devuelve todos los campos de entrada en orden de formulario.
func Fields() []Field {
	out := make([]Field, 0, len(fieldScenarios))
	for _, fs := range fieldScenarios {
		out = append(out, fs.field)
	}
	return out
}

// AppliesTo indica si el campo se muestra en el escenario dado.
func (f Field) AppliesTo(s Scenario) bool {
	for _, fs := range fieldScenarios {
		if fs.field != f {
			continue
		}
		for _, sc := range fs.scenarios {
			if sc == s {
				return true
			}
		}
		return false
	}
	return false
}

// VisibleFields devuelve los campos visibles para el escenario, en orden de formulario.
func VisibleFields(s Scenario) []Field {
	var out []Field
	for _, fs := range fieldScenarios {
		if fs.field.AppliesTo(s) {
			out = append(out, fs.field)
		}
	}
	return out
}
