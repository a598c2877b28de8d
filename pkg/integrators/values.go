package integrators

// Scalar is a one-dimensional input or a single-component output.
type Scalar Real

func (s *Scalar) Dim() int             { return 1 }
func (s *Scalar) FromArgs(args []Real) { *s = Scalar(args[0]) }
func (s Scalar) NComp() int            { return 1 }
func (s Scalar) IntoArgs(out []Real)   { out[0] = Real(s) }

// Vec2 is a point or value with two components.
type Vec2 [2]Real

func (v *Vec2) Dim() int             { return len(v) }
func (v *Vec2) FromArgs(args []Real) { copy(v[:], args) }
func (v Vec2) NComp() int            { return len(v) }
func (v Vec2) IntoArgs(out []Real)   { copy(out, v[:]) }

// Vec3 is a point or value with three components.
type Vec3 [3]Real

func (v *Vec3) Dim() int             { return len(v) }
func (v *Vec3) FromArgs(args []Real) { copy(v[:], args) }
func (v Vec3) NComp() int            { return len(v) }
func (v Vec3) IntoArgs(out []Real)   { copy(out, v[:]) }

// Vec4 is a point or value with four components.
type Vec4 [4]Real

func (v *Vec4) Dim() int             { return len(v) }
func (v *Vec4) FromArgs(args []Real) { copy(v[:], args) }
func (v Vec4) NComp() int            { return len(v) }
func (v Vec4) IntoArgs(out []Real)   { copy(out, v[:]) }
