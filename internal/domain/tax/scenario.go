package tax

import "github.com/jhoicas/calculadora-vat/internal/domain"

// Scenario identifica el escenario de cálculo activo.
type Scenario string

const (
	ScenarioRegular  Scenario = "regular"   // venta regular
	ScenarioPWD      Scenario = "pwd"       // descuento PWD/Senior Citizen individual
	ScenarioPWDGroup Scenario = "pwd-group" // descuento PWD/Senior Citizen grupal
)

// DefaultScenario es el escenario activo al iniciar.
const DefaultScenario = ScenarioRegular

// Scenarios devuelve los escenarios soportados en el orden en que se muestran los selectores.
func Scenarios() []Scenario {
	return []Scenario{ScenarioRegular, ScenarioPWD, ScenarioPWDGroup}
}

// Valid indica si el tag corresponde a un escenario conocido.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioRegular, ScenarioPWD, ScenarioPWDGroup:
		return true
	}
	return false
}

// ParseScenario convierte un tag externo en Scenario.
// Un tag vacío devuelve DefaultScenario; uno desconocido, domain.ErrUnknownScenario.
func ParseScenario(tag string) (Scenario, error) {
	if tag == "" {
		return DefaultScenario, nil
	}
	s := Scenario(tag)
	if !s.Valid() {
		return "", domain.ErrUnknownScenario
	}
	return s, nil
}

// String implementa fmt.Stringer.
func (s Scenario) String() string { return string(s) }
