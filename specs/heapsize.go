package specs

// HeapSizeTableSpec defines the deterministic per-instance allocation charge
// for built-in library types.
//
// Sizes are not measured from the host runtime. Each entry was derived offline
// by summing the byte footprint of the type's declared fields on top of a fixed
// object header, so the same build always charges the same amount regardless of
// platform.
type HeapSizeTableSpec struct {
	// Size charged for any type name that has no entry in the table.
	//
	// Covers a bare object header plus nothing else. Must be positive.
	DefaultObjectSize int32 `json:"defaultObjectSize" yaml:"defaultObjectSize"`

	// Size charged for exception types synthesized by the engine itself.
	//
	// Those exceptions carry no instance fields beyond what Throwable declares,
	// so they share one constant. Must be positive.
	GeneratedExceptionSize int32 `json:"generatedExceptionSize" yaml:"generatedExceptionSize"`

	// Known type sizes, keyed by canonical slash-delimited type name.
	//
	// Type names must be unique and non-empty, and sizes must be positive.
	Entries []HeapSizeEntrySpec `json:"entries" yaml:"entries"`
}

// HeapSizeEntrySpec maps one canonical type name to its instance size in bytes.
type HeapSizeEntrySpec struct {
	// Canonical internal type name, e.g. "p/avm/Address" or "s/java/lang/Enum".
	TypeName string `json:"typeName" yaml:"typeName"`

	// Per-instance allocation charge in bytes.
	Size int32 `json:"size" yaml:"size"`
}

const (
	defaultObjectAllocationSize    int32 = 16
	defaultExceptionAllocationSize int32 = 32
)

// DefaultHeapSizeTableSpec returns the heap size table shipped with this build.
//
// Type names are post-rename: API classes live under "p/" and shadowed JCL
// classes under "s/".
func DefaultHeapSizeTableSpec() HeapSizeTableSpec {
	return HeapSizeTableSpec{
		DefaultObjectSize:      defaultObjectAllocationSize,
		GeneratedExceptionSize: defaultExceptionAllocationSize,
		Entries: []HeapSizeEntrySpec{
			{TypeName: "p/avm/Address", Size: 24},                   // Object + byte[]
			{TypeName: "p/avm/Result", Size: 25},                    // Object + boolean + byte[]
			{TypeName: "p/avm/ValueBuffer", Size: 24},               // Object + byte[]
			{TypeName: "s/java/lang/Class", Size: 32},               // Object + Object + Object
			{TypeName: "s/java/lang/Enum", Size: 28},                // Object + String + int
			{TypeName: "s/java/util/concurrent/TimeUnit", Size: 28}, // Enum
			{TypeName: "s/java/math/RoundingMode", Size: 32},        // Enum + int

			// exceptions that are not generated
			{TypeName: "s/java/lang/Throwable", Size: defaultExceptionAllocationSize}, // Object + String + Object
			{TypeName: "s/java/lang/AssertionError", Size: defaultExceptionAllocationSize},
			{TypeName: "s/java/lang/EnumConstantNotPresentException", Size: 48}, // Throwable + Object + String
			{TypeName: "s/java/util/NoSuchElementException", Size: defaultExceptionAllocationSize},
			{TypeName: "s/java/lang/TypeNotPresentException", Size: 40}, // Throwable + String
			{TypeName: "s/java/lang/Error", Size: defaultExceptionAllocationSize},
			{TypeName: "s/java/lang/Exception", Size: defaultExceptionAllocationSize},
			{TypeName: "s/java/lang/RuntimeException", Size: defaultExceptionAllocationSize},
		},
	}
}
