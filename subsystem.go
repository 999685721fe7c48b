package axcl

// Subsystem identifies one native runtime library.
type Subsystem uint8

const (
	SubsystemRT Subsystem = iota
	SubsystemSys
	SubsystemDMADIM
	SubsystemIVPS
	SubsystemIVE
	SubsystemVENC
	SubsystemVDEC
	SubsystemNPU
	subsystemCount
)

// subsystemMeta contains static metadata about a subsystem.
type subsystemMeta struct {
	Name    string
	Library string // file name without directory
	Module  ModID  // module id in native error codes, 0 for the runtime
	Wrapped bool   // has typed wrappers in this package
}

// Static metadata table - indexed by Subsystem.
var subsystemInfo = [subsystemCount]subsystemMeta{
	SubsystemRT:     {"rt", "libaxcl_rt.so", ModAXCL, true},
	SubsystemSys:    {"sys", "libaxcl_sys.so", ModSYS, true},
	SubsystemDMADIM: {"dmadim", "libaxcl_dmadim.so", ModDMA, false},
	SubsystemIVPS:   {"ivps", "libaxcl_ivps.so", ModIVPS, true},
	SubsystemIVE:    {"ive", "libaxcl_ive.so", ModIVE, false},
	SubsystemVENC:   {"venc", "libaxcl_venc.so", ModVENC, false},
	SubsystemVDEC:   {"vdec", "libaxcl_vdec.so", ModVDEC, true},
	SubsystemNPU:    {"npu", "libaxcl_npu.so", ModNPU, false},
}

// Libraries every subsystem library links against; loaded first, globally.
var dependencyLibraries = []string{
	"libspdlog.so",
	"libaxcl_logger.so",
	"libaxcl_token.so",
	"libaxcl_pcie_msg.so",
	"libaxcl_pcie_dma.so",
	"libaxcl_comm.so",
	"libaxcl_pkg.so",
}

// stubLibrary stands in for every subsystem when testing against the
// vendor's stub build.
const stubLibrary = "libaxcl_stub.so"

// String returns the subsystem name.
func (s Subsystem) String() string {
	if s >= subsystemCount {
		return "unknown"
	}
	return subsystemInfo[s].Name
}

// Library returns the shared library file of the subsystem.
func (s Subsystem) Library() string {
	if s >= subsystemCount {
		return ""
	}
	return subsystemInfo[s].Library
}

// Module returns the module id used in the subsystem's error codes.
func (s Subsystem) Module() ModID {
	if s >= subsystemCount {
		return 0
	}
	return subsystemInfo[s].Module
}

// Wrapped reports whether the package exposes typed calls for the subsystem.
func (s Subsystem) Wrapped() bool {
	if s >= subsystemCount {
		return false
	}
	return subsystemInfo[s].Wrapped
}

// ParseSubsystem looks a subsystem up by name.
func ParseSubsystem(name string) (Subsystem, bool) {
	for s := Subsystem(0); s < subsystemCount; s++ {
		if subsystemInfo[s].Name == name {
			return s, true
		}
	}
	return 0, false
}

// AllSubsystems returns every known subsystem in table order.
func AllSubsystems() []Subsystem {
	out := make([]Subsystem, subsystemCount)
	for i := range out {
		out[i] = Subsystem(i)
	}
	return out
}

// wrappedSubsystems is the default load set.
func wrappedSubsystems() []Subsystem {
	var out []Subsystem
	for s := Subsystem(0); s < subsystemCount; s++ {
		if subsystemInfo[s].Wrapped {
			out = append(out, s)
		}
	}
	return out
}
