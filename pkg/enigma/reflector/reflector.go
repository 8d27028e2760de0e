package reflector

import (
	"fmt"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

type Reflector struct {
	model wiring.ReflectorModel
}

// New returns reflector A
func New() *Reflector {
	return &Reflector{model: wiring.ReflectorA}
}

func (r *Reflector) Reflect(l alphabet.Letter) alphabet.Letter {
	return alphabet.Letter(wiring.ForReflector(r.model)[l.Index()])
}

func (r *Reflector) Model() wiring.ReflectorModel {
	return r.model
}

func (r *Reflector) SetModel(model wiring.ReflectorModel) error {
	if !model.Valid() {
		return fmt.Errorf("%w: %d", wiring.ErrUnknownReflector, int(model))
	}
	r.model = model
	return nil
}

func (r *Reflector) Next() {
	r.model = r.model.Next()
}

func (r *Reflector) Prev() {
	r.model = r.model.Prev()
}
