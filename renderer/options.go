package renderer

// DebugMode selects an alternate per-pixel shader used to visualize the
// BVH instead of running the full path-traced integrator.
type DebugMode uint8

const (
	// DebugNone runs the ordinary Monte-Carlo integrator.
	DebugNone DebugMode = iota
	// DebugDepth colors each pixel by how many BVH nodes its primary ray
	// visited.
	DebugDepth
	// DebugNormals colors each pixel by its hit surface normal.
	DebugNormals
)

// Options configures a single frame render.
type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel.
	SamplesPerPixel uint32

	// Number of CPU workers rendering concurrently. Zero means
	// runtime.NumCPU().
	Workers uint32

	// Base seed for the per-row RNG streams; a fixed seed reproduces a
	// fixed image regardless of Workers.
	Seed int64

	// Camera parameters.
	LookFrom, LookAt [3]float32
	VFov             float32
	Aperture         float32
	FocusDist        float32

	// Debug selects an alternate visualization shader; see DebugMode.
	Debug DebugMode
}
