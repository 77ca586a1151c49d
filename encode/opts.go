package encode

type EncodeOption func(*EncState)

// EncState holds the settings of one call to [Encode].
type EncState struct {
	rings    bool
	branches bool
}

func Rings(v bool) EncodeOption {
	return func(es *EncState) { es.rings = v }
}
func Branches(v bool) EncodeOption {
	return func(es *EncState) { es.branches = v }
}
