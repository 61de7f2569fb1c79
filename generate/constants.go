package generate

// Generator method tags prefixed to wrapped errors.
const (
	MethodInsertion           = "Insertion"
	MethodBubble              = "Bubble"
	MethodBoseNelson          = "BoseNelson"
	MethodBatcherOddEvenMerge = "BatcherOddEvenMerge"
	MethodBitonicMerge        = "BitonicMerge"
	MethodSizeOptimized       = "SizeOptimized"
)

// MinElements is the smallest element count any scheme accepts. A one-element
// network is the identity: it has no layers.
const MinElements = 1

// MaxSizeOptimized is the largest n covered by the size-optimized table.
const MaxSizeOptimized = len(sizeOptimizedTable)
