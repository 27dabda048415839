package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

/**
 * @brief A 2x2 matrix stored in column-major order.
 */
type Matrix2 struct {
	/** @brief The matrix elements, column0row0, column0row1, column1row0, column1row1. */
	Data [4]float64
}

const Matrix2PackedLength = 4

// Indexes into Matrix2.Data.
const (
	Column0Row0 = 0
	Column0Row1 = 1
	Column1Row0 = 2
	Column1Row1 = 3
)

var (
	Matrix2Identity = Matrix2{Data: [4]float64{1.0, 0.0, 0.0, 1.0}}
	Matrix2Zero     = Matrix2{}
)

// NewMatrix2 takes its arguments in row-major order for readability.
func NewMatrix2(column0Row0, column1Row0, column0Row1, column1Row1 float64) Matrix2 {
	return Matrix2{Data: [4]float64{column0Row0, column0Row1, column1Row0, column1Row1}}
}

func Matrix2FromColumnMajorArray(values []float64) Matrix2 {
	return UnpackMatrix2(values, 0)
}

func Matrix2FromRowMajorArray(values []float64) Matrix2 {
	checkUnpack(values, 0, Matrix2PackedLength)
	return NewMatrix2(values[0], values[1], values[2], values[3])
}

// Matrix2FromScale creates a non-uniform scale matrix.
func Matrix2FromScale(scale Cartesian2) Matrix2 {
	return NewMatrix2(scale.X, 0.0, 0.0, scale.Y)
}

func Matrix2FromUniformScale(scale float64) Matrix2 {
	return NewMatrix2(scale, 0.0, 0.0, scale)
}

// Matrix2FromRotation creates a counter-clockwise rotation matrix.
func Matrix2FromRotation(angle float64) Matrix2 {
	cosAngle := m.Cos(angle)
	sinAngle := m.Sin(angle)
	return NewMatrix2(cosAngle, -sinAngle, sinAngle, cosAngle)
}

func (mt Matrix2) PackedLength() int {
	return Matrix2PackedLength
}

func (mt Matrix2) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+Matrix2PackedLength)
	copy(array[startingIndex:], mt.Data[:])
	return array
}

func UnpackMatrix2(array []float64, startingIndex int) Matrix2 {
	checkUnpack(array, startingIndex, Matrix2PackedLength)
	var result Matrix2
	copy(result.Data[:], array[startingIndex:startingIndex+Matrix2PackedLength])
	return result
}

func UnpackMatrix2Array(array []float64) []Matrix2 {
	return unpackArray(array, Matrix2PackedLength, UnpackMatrix2)
}

// ToArray returns the elements in column-major order.
func (mt Matrix2) ToArray() []float64 {
	return []float64{mt.Data[0], mt.Data[1], mt.Data[2], mt.Data[3]}
}

/**
 * @brief Computes the index into Data of the element at the given column and row.
 * Both column and row must be 0 or 1.
 */
func GetMatrix2ElementIndex(column, row int) int {
	core.IndexInRange("column", column, 2)
	core.IndexInRange("row", row, 2)
	return column*2 + row
}

func (mt Matrix2) GetElement(column, row int) float64 {
	return mt.Data[GetMatrix2ElementIndex(column, row)]
}

func (mt Matrix2) GetColumn(index int) Cartesian2 {
	core.IndexInRange("index", index, 2)
	start := index * 2
	return Cartesian2{mt.Data[start], mt.Data[start+1]}
}

func (mt Matrix2) SetColumn(index int, column Cartesian2) Matrix2 {
	core.IndexInRange("index", index, 2)
	start := index * 2
	mt.Data[start] = column.X
	mt.Data[start+1] = column.Y
	return mt
}

func (mt Matrix2) GetRow(index int) Cartesian2 {
	core.IndexInRange("index", index, 2)
	return Cartesian2{mt.Data[index], mt.Data[index+2]}
}

func (mt Matrix2) SetRow(index int, row Cartesian2) Matrix2 {
	core.IndexInRange("index", index, 2)
	mt.Data[index] = row.X
	mt.Data[index+2] = row.Y
	return mt
}

// SetScale replaces the scale of an affine scale+rotation matrix, keeping its rotation.
func (mt Matrix2) SetScale(scale Cartesian2) Matrix2 {
	existing := mt.GetScale()
	scaleRatioX := scale.X / existing.X
	scaleRatioY := scale.Y / existing.Y
	mt.Data[0] *= scaleRatioX
	mt.Data[1] *= scaleRatioX
	mt.Data[2] *= scaleRatioY
	mt.Data[3] *= scaleRatioY
	return mt
}

func (mt Matrix2) SetUniformScale(scale float64) Matrix2 {
	return mt.SetScale(Cartesian2{scale, scale})
}

// GetScale extracts the scale as the magnitudes of the columns. The matrix is
// assumed to be a pure scale+rotation transform.
func (mt Matrix2) GetScale() Cartesian2 {
	return Cartesian2{
		mt.GetColumn(0).Magnitude(),
		mt.GetColumn(1).Magnitude(),
	}
}

func (mt Matrix2) GetMaximumScale() float64 {
	return mt.GetScale().MaximumComponent()
}

// SetRotation replaces the rotation of mt, keeping its scale.
func (mt Matrix2) SetRotation(rotation Matrix2) Matrix2 {
	scale := mt.GetScale()
	mt.Data[0] = rotation.Data[0] * scale.X
	mt.Data[1] = rotation.Data[1] * scale.X
	mt.Data[2] = rotation.Data[2] * scale.Y
	mt.Data[3] = rotation.Data[3] * scale.Y
	return mt
}

// GetRotation extracts the rotation by dividing each column by its magnitude.
func (mt Matrix2) GetRotation() Matrix2 {
	scale := mt.GetScale()
	mt.Data[0] /= scale.X
	mt.Data[1] /= scale.X
	mt.Data[2] /= scale.Y
	mt.Data[3] /= scale.Y
	return mt
}

/**
 * @brief Computes mt * other.
 */
func (mt Matrix2) Multiply(other Matrix2) Matrix2 {
	l := mt.Data
	r := other.Data
	return Matrix2{Data: [4]float64{
		l[0]*r[0] + l[2]*r[1],
		l[1]*r[0] + l[3]*r[1],
		l[0]*r[2] + l[2]*r[3],
		l[1]*r[2] + l[3]*r[3],
	}}
}

func (mt Matrix2) Add(other Matrix2) Matrix2 {
	for i := range mt.Data {
		mt.Data[i] += other.Data[i]
	}
	return mt
}

func (mt Matrix2) Subtract(other Matrix2) Matrix2 {
	for i := range mt.Data {
		mt.Data[i] -= other.Data[i]
	}
	return mt
}

// MultiplyByVector treats v as a column vector.
func (mt Matrix2) MultiplyByVector(v Cartesian2) Cartesian2 {
	return Cartesian2{
		mt.Data[0]*v.X + mt.Data[2]*v.Y,
		mt.Data[1]*v.X + mt.Data[3]*v.Y,
	}
}

func (mt Matrix2) MultiplyByScalar(scalar float64) Matrix2 {
	for i := range mt.Data {
		mt.Data[i] *= scalar
	}
	return mt
}

// MultiplyByScale is mt * Matrix2FromScale(scale) without building the scale matrix.
func (mt Matrix2) MultiplyByScale(scale Cartesian2) Matrix2 {
	mt.Data[0] *= scale.X
	mt.Data[1] *= scale.X
	mt.Data[2] *= scale.Y
	mt.Data[3] *= scale.Y
	return mt
}

func (mt Matrix2) MultiplyByUniformScale(scale float64) Matrix2 {
	return mt.MultiplyByScalar(scale)
}

func (mt Matrix2) Negate() Matrix2 {
	return mt.MultiplyByScalar(-1.0)
}

func (mt Matrix2) Transpose() Matrix2 {
	mt.Data[1], mt.Data[2] = mt.Data[2], mt.Data[1]
	return mt
}

func (mt Matrix2) Abs() Matrix2 {
	for i := range mt.Data {
		mt.Data[i] = m.Abs(mt.Data[i])
	}
	return mt
}

func (mt Matrix2) Determinant() float64 {
	return mt.Data[0]*mt.Data[3] - mt.Data[2]*mt.Data[1]
}

// Inverse returns core.ErrSingular when the determinant is (nearly) zero.
func (mt Matrix2) Inverse() (Matrix2, error) {
	det := mt.Determinant()
	if m.Abs(det) < Epsilon21 {
		return Matrix2{}, core.ErrSingular
	}
	inv := 1.0 / det
	return Matrix2{Data: [4]float64{
		mt.Data[3] * inv,
		-mt.Data[1] * inv,
		-mt.Data[2] * inv,
		mt.Data[0] * inv,
	}}, nil
}

func (mt Matrix2) Equals(other Matrix2) bool {
	return mt.Data == other.Data
}

// EqualsEpsilon compares the elements with an absolute tolerance.
func (mt Matrix2) EqualsEpsilon(other Matrix2, epsilon float64) bool {
	for i := range mt.Data {
		if m.Abs(mt.Data[i]-other.Data[i]) > epsilon {
			return false
		}
	}
	return true
}

func (mt Matrix2) String() string {
	return fmt.Sprintf("(%v, %v)\n(%v, %v)", mt.Data[0], mt.Data[2], mt.Data[1], mt.Data[3])
}
