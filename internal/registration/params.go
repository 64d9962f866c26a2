package registration

// Params holds the four similarity-transform parameters estimated by
// registration: uniform scale, rotation in degrees, and translation in
// pixels at the image's native resolution.
type Params struct {
	Scale float64 `json:"s"`
	Theta float64 `json:"theta"`
	Tx    float64 `json:"tx"`
	Ty    float64 `json:"ty"`
}

// IdentityParams returns the parameters of the identity transform.
func IdentityParams() Params {
	return Params{Scale: 1}
}

// vec flattens the parameters in (s, theta, tx, ty) order for the solver.
func (p Params) vec() [4]float64 {
	return [4]float64{p.Scale, p.Theta, p.Tx, p.Ty}
}

func paramsFromVec(v [4]float64) Params {
	return Params{Scale: v[0], Theta: v[1], Tx: v[2], Ty: v[3]}
}

// Mask selects which parameters the solver may update, in (s, theta, tx, ty)
// order. A false entry freezes that parameter for the whole run.
type Mask [4]bool

// AllTrainable returns a mask with every parameter trainable.
func AllTrainable() Mask {
	return Mask{true, true, true, true}
}

// TranslationOnly returns a mask that trains tx and ty while freezing
// scale and rotation.
func TranslationOnly() Mask {
	return Mask{false, false, true, true}
}
