package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	specs "github.com/chrisconley/energymeter/specs"
)

// HeapSizeTable implements specs.SizeOf and specs.SizeOfGeneratedException.
//
// The table is immutable once built. Lookups never fail: a type name with no
// entry is charged the default object size.
type HeapSizeTable struct {
	sizes                  map[string]int32
	defaultObjectSize      AllocationSize
	generatedExceptionSize AllocationSize
}

// NewHeapSizeTable validates spec and builds the lookup table.
// Every invalid entry is reported, not only the first one.
func NewHeapSizeTable(spec specs.HeapSizeTableSpec) (HeapSizeTable, error) {
	var result *multierror.Error

	defaultObjectSize, err := NewAllocationSize(spec.DefaultObjectSize)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid default object size: %w", err))
	}

	generatedExceptionSize, err := NewAllocationSize(spec.GeneratedExceptionSize)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid generated exception size: %w", err))
	}

	sizes := make(map[string]int32, len(spec.Entries))
	for i, entry := range spec.Entries {
		typeName, err := NewTypeName(entry.TypeName)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w", i, err))
			continue
		}

		size, err := NewAllocationSize(entry.Size)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d (%s): %w", i, typeName.ToString(), err))
			continue
		}

		if _, exists := sizes[typeName.ToString()]; exists {
			result = multierror.Append(result, fmt.Errorf("entry %d: duplicate type name %q", i, typeName.ToString()))
			continue
		}
		sizes[typeName.ToString()] = size.ToInt32()
	}

	if err := result.ErrorOrNil(); err != nil {
		return HeapSizeTable{}, err
	}

	return HeapSizeTable{
		sizes:                  sizes,
		defaultObjectSize:      defaultObjectSize,
		generatedExceptionSize: generatedExceptionSize,
	}, nil
}

// SizeOf returns the entry for typeName, or the default object size if there is none.
func (t HeapSizeTable) SizeOf(typeName string) int32 {
	if size, ok := t.sizes[typeName]; ok {
		return size
	}
	return t.defaultObjectSize.ToInt32()
}

// SizeOfGeneratedException returns the size charged for engine-synthesized exceptions.
// Those carry no instance fields of their own.
func (t HeapSizeTable) SizeOfGeneratedException() int32 {
	return t.generatedExceptionSize.ToInt32()
}

func (t HeapSizeTable) DefaultObjectSize() int32 {
	return t.defaultObjectSize.ToInt32()
}

// Len returns the number of explicit entries.
func (t HeapSizeTable) Len() int {
	return len(t.sizes)
}

// TypeNames returns the type names with explicit entries, sorted.
func (t HeapSizeTable) TypeNames() []string {
	names := make([]string, 0, len(t.sizes))
	for name := range t.sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t HeapSizeTable) ToSpec() specs.HeapSizeTableSpec {
	entries := make([]specs.HeapSizeEntrySpec, 0, len(t.sizes))
	for _, name := range t.TypeNames() {
		entries = append(entries, specs.HeapSizeEntrySpec{TypeName: name, Size: t.sizes[name]})
	}
	return specs.HeapSizeTableSpec{
		DefaultObjectSize:      t.defaultObjectSize.ToInt32(),
		GeneratedExceptionSize: t.generatedExceptionSize.ToInt32(),
		Entries:                entries,
	}
}

type AllocationSize struct {
	value int32
}

func NewAllocationSize(value int32) (AllocationSize, error) {
	if value <= 0 {
		return AllocationSize{}, fmt.Errorf("allocation size must be positive, got %d", value)
	}
	return AllocationSize{value: value}, nil
}

func (s AllocationSize) ToInt32() int32 {
	return s.value
}

// TypeName is a canonical slash-delimited type name such as "p/avm/Address".
type TypeName struct {
	value string
}

func NewTypeName(value string) (TypeName, error) {
	if value == "" {
		return TypeName{}, fmt.Errorf("type name is required")
	}
	if strings.Contains(value, ".") {
		return TypeName{}, fmt.Errorf("type name %q must be slash-delimited", value)
	}
	return TypeName{value: value}, nil
}

func (n TypeName) ToString() string {
	return n.value
}

// InternalTypeName converts a fully qualified dotted name ("s.java.lang.Enum")
// to the slash-delimited form used as a table key ("s/java/lang/Enum").
func InternalTypeName(fullyQualified string) string {
	return strings.ReplaceAll(fullyQualified, ".", "/")
}
