package bigint

// Int8, Int16, and Int32 are the three concrete limb widths the rest of
// this module instantiates Int with; nothing below this type alias layer
// is generic over anything the callers of this package need to see.
type (
	Int8  = Int[uint8]
	Int16 = Int[uint16]
	Int32 = Int[uint32]
)
