package arithbuf

import "math/big"

// Shortcuts: every operation taking a power product has a variant taking a
// single variable x, resolved through the buffer's table.

// MulVar multiplies b by x.
func (b *Buffer) MulVar(x int32) {
	b.MulPP(b.tbl.VarProd(x))
}

// MulNegVar multiplies b by -x.
func (b *Buffer) MulNegVar(x int32) {
	b.MulNegPP(b.tbl.VarProd(x))
}

// MulVarMono multiplies b by a·x.
func (b *Buffer) MulVarMono(a *big.Rat, x int32) {
	b.MulMono(a, b.tbl.VarProd(x))
}

// AddVar adds x to b.
func (b *Buffer) AddVar(x int32) {
	b.AddPP(b.tbl.VarProd(x))
}

// SubVar subtracts x from b.
func (b *Buffer) SubVar(x int32) {
	b.SubPP(b.tbl.VarProd(x))
}

// AddVarMono adds a·x to b.
func (b *Buffer) AddVarMono(a *big.Rat, x int32) {
	b.AddMono(a, b.tbl.VarProd(x))
}

// SubVarMono subtracts a·x from b.
func (b *Buffer) SubVarMono(a *big.Rat, x int32) {
	b.SubMono(a, b.tbl.VarProd(x))
}

// AddVarTimesBuffer adds x·b1 to b.
func (b *Buffer) AddVarTimesBuffer(b1 *Buffer, x int32) {
	b.AddPPTimesBuffer(b1, b.tbl.VarProd(x))
}

// SubVarTimesBuffer subtracts x·b1 from b.
func (b *Buffer) SubVarTimesBuffer(b1 *Buffer, x int32) {
	b.SubPPTimesBuffer(b1, b.tbl.VarProd(x))
}

// AddVarMonoTimesBuffer adds a·x·b1 to b.
func (b *Buffer) AddVarMonoTimesBuffer(b1 *Buffer, a *big.Rat, x int32) {
	b.AddMonoTimesBuffer(b1, a, b.tbl.VarProd(x))
}

// SubVarMonoTimesBuffer subtracts a·x·b1 from b.
func (b *Buffer) SubVarMonoTimesBuffer(b1 *Buffer, a *big.Rat, x int32) {
	b.SubMonoTimesBuffer(b1, a, b.tbl.VarProd(x))
}
