/*
DESCRIPTION
  idct2d.go implements the 2-D inverse DCT dispatcher for every supported
  square and rectangular block shape, via the standard row-column
  separable decomposition (ITU-T T.81 annex A.3.3).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

// IDCT2D applies the 2-D inverse DCT to a ROWS x COLS block stored in
// row-major order: apply the COLS-point IDCT to every row, transpose,
// apply the ROWS-point IDCT to every row, transpose back.
func IDCT2D(rows, cols int, block []float32) []float32 {
	if len(block) != rows*cols {
		panic("dct: IDCT2D block size mismatch")
	}

	// Pass 1: COLS-point IDCT along each of the ROWS rows.
	pass1 := make([]float32, rows*cols)
	row := make([]float32, cols)
	for r := 0; r < rows; r++ {
		copy(row, block[r*cols:(r+1)*cols])
		out := IDCT1D(cols, row)
		copy(pass1[r*cols:(r+1)*cols], out)
	}

	// Transpose ROWS x COLS -> COLS x ROWS.
	transposed := transpose(pass1, rows, cols)

	// Pass 2: ROWS-point IDCT along each of the (now) COLS rows.
	pass2 := make([]float32, rows*cols)
	row2 := make([]float32, rows)
	for r := 0; r < cols; r++ {
		copy(row2, transposed[r*rows:(r+1)*rows])
		out := IDCT1D(rows, row2)
		copy(pass2[r*rows:(r+1)*rows], out)
	}

	// Transpose back COLS x ROWS -> ROWS x COLS.
	return transpose(pass2, cols, rows)
}

// DCT2D is the forward counterpart used only by tests (see dct1d.go).
func DCT2D(rows, cols int, block []float32) []float32 {
	if len(block) != rows*cols {
		panic("dct: DCT2D block size mismatch")
	}
	pass1 := make([]float32, rows*cols)
	row := make([]float32, cols)
	for r := 0; r < rows; r++ {
		copy(row, block[r*cols:(r+1)*cols])
		out := DCT1D(cols, row)
		copy(pass1[r*cols:(r+1)*cols], out)
	}
	transposed := transpose(pass1, rows, cols)
	pass2 := make([]float32, rows*cols)
	row2 := make([]float32, rows)
	for r := 0; r < cols; r++ {
		copy(row2, transposed[r*rows:(r+1)*rows])
		out := DCT1D(rows, row2)
		copy(pass2[r*rows:(r+1)*rows], out)
	}
	return transpose(pass2, cols, rows)
}

// transpose returns the transpose of a rows x cols row-major matrix as a
// cols x rows row-major matrix.
func transpose(m []float32, rows, cols int) []float32 {
	out := make([]float32, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c*rows+r] = m[r*cols+c]
		}
	}
	return out
}

// IDCT2DShape is a convenience wrapper dispatching on a Shape's own
// dimensions; it panics if s is a non-DCT shape (use the dedicated
// functions in nondct.go for those instead).
func IDCT2DShape(s Shape, block []float32) []float32 {
	if !s.IsDCT() {
		panic("dct: IDCT2DShape called with a non-DCT shape " + s.String())
	}
	rows, cols := s.Dims()
	return IDCT2D(rows, cols, block)
}
