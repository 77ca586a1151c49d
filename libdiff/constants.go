package libdiff

// Op is the kind of an Edit.
type Op int

const (
	Delete Op = iota
	Insert
	Replace
)

var opNames = map[Op]string{
	Delete:  "delete",
	Insert:  "insert",
	Replace: "replace",
}

func (o Op) String() string {
	return opNames[o]
}
