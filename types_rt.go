package axcl

// MaxDeviceCount bounds the runtime device list.
const MaxDeviceCount = 256

// Memcpy directions (axclrtMemcpyKind).
const (
	MemcpyHostToHost = iota
	MemcpyHostToDevice
	MemcpyDeviceToHost
	MemcpyDeviceToDevice
	MemcpyHostPhyToDevice
	MemcpyDeviceToHostPhy
)

// Device allocation policies (axclrtMemMallocPolicy).
const (
	MemMallocHugeFirst = iota
	MemMallocHugeOnly
	MemMallocNormalOnly
)

var (
	DeviceProperties = Struct("axclrtDeviceProperties", []Field{
		{Name: "swVersion", Type: Chars(64), Alias: "sw_version"},
		{Name: "uid", Type: U64},
		{Name: "pciDomain", Type: U32, Alias: "pci_domain"},
		{Name: "pciBusID", Type: U32, Alias: "pci_bus_id"},
		{Name: "pciDeviceID", Type: U32, Alias: "pci_device_id"},
		{Name: "temperature", Type: S32},
		{Name: "totalMemSize", Type: U32, Alias: "total_mem_size"},
		{Name: "freeMemSize", Type: U32, Alias: "free_mem_size"},
		{Name: "totalCmmSize", Type: U32, Alias: "total_cmm_size"},
		{Name: "freeCmmSize", Type: U32, Alias: "free_cmm_size"},
		{Name: "cpuLoading", Type: U32, Alias: "cpu_loading"},
		{Name: "npuLoading", Type: U32, Alias: "npu_loading"},
		{Name: "reserved", Type: Array(U32, 32)},
	})

	DeviceList = Struct("axclrtDeviceList", []Field{
		{Name: "num", Type: U32, CountOf: "devices"},
		{Name: "devices", Type: Array(S32, MaxDeviceCount)},
	})
)
