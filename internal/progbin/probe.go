package progbin

// Capability is the result of a driver capability probe. It is derived
// fresh on each Probe call and never persisted; Cache memoizes one
// result for its lifetime.
type Capability struct {
	Supported   bool
	FormatCount int32
}

// Probe queries whether the driver can retrieve and reload program
// binaries. The reported format count is the authoritative gate: fewer
// than one format means unsupported. A missing retrieval entry point on
// a driver that does report formats is logged as a warning but does not
// flip the result.
func Probe(drv Driver) Capability {
	formats := drv.NumProgramBinaryFormats()
	if formats < 1 {
		Logger().Info("driver reports no program binary formats")
		return Capability{Supported: false, FormatCount: formats}
	}
	if !drv.HasGetProgramBinary() {
		Logger().Warn("binary retrieval entry point unavailable", "formats", formats)
		return Capability{Supported: true, FormatCount: formats}
	}

	Logger().Info("program binary supported", "formats", formats)
	return Capability{Supported: true, FormatCount: formats}
}
