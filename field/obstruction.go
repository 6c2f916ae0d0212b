package field

// Obstruction marks solid cells. Cells outside the field are free.
type Obstruction struct {
	*Field[bool]
}

// NewObstruction allocates an obstruction mask with every cell free.
func NewObstruction(dims Dims) *Obstruction {
	return &Obstruction{Field: New[bool](dims)}
}

// Solid reports whether (x, y, z) is blocked. Out-of-range queries are free.
func (o *Obstruction) Solid(x, y, z int) bool {
	return o.GetOr(x, y, z, false)
}

// Count returns the number of solid cells.
func (o *Obstruction) Count() int {
	n := 0
	for _, s := range o.data {
		if s {
			n++
		}
	}
	return n
}

// Equal reports whether two masks have the same dimensions and contents.
func (o *Obstruction) Equal(other *Obstruction) bool {
	if !o.dims.Equal(other.dims) {
		return false
	}
	for i, s := range o.data {
		if other.data[i] != s {
			return false
		}
	}
	return true
}
