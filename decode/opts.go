package decode

type DecodeOption func(*DecState)

type DecState struct {
	rings    bool
	branches bool
}

func Rings(v bool) DecodeOption {
	return func(ds *DecState) { ds.rings = v }
}
func Branches(v bool) DecodeOption {
	return func(ds *DecState) { ds.branches = v }
}
