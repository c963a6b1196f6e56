package jv

// Tunable limits and magic numbers, grouped together the way this
// package's other single-concern files are organized.
const (
	// DefaultObjectCapacity is the initial slot capacity of Object(); it
	// must stay a power of two since object growth doubles it on rehash.
	DefaultObjectCapacity = 8

	// DefaultArrayCapacity is the backing capacity Array() allocates
	// before any elements are appended.
	DefaultArrayCapacity = 16

	// MaxIndex bounds array indices and object slot counts so that
	// offset+index arithmetic can't overflow a native int.
	MaxIndex = int(^uint(0)>>1) >> 2

	// maxInt32 bounds the total byte length a string build (repeat,
	// concat) is allowed to grow to, matching the 32-bit length ceiling
	// these operations are sized against regardless of native int width.
	maxInt32 = 1<<31 - 1

	// arraySizeNumerator/arraySizeDenominator implement the "1.5x"
	// growth factor array writes round capacity up to.
	arraySizeNumerator   = 3
	arraySizeDenominator = 2

	// stringGrowthFloor is the minimum buffer size a string reallocation
	// grows into.
	stringGrowthFloor = 32

	// hashSeed seeds the MurmurHash3-32 string hash.
	hashSeed uint32 = 0x432A9843

	// maxOffsetBits is the width Value reserves for its array slice
	// offset field. This package always materializes ArraySlice into a
	// fresh payload rather than aliasing a shared backing array (see
	// DESIGN.md), so the field stays at 0 for every array Value in
	// practice; the width is kept for any future aliasing slice type.
	maxOffsetBits = 32
)
