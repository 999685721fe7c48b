package axcl

// MaxCommonPools bounds a pool floorplan.
const MaxCommonPools = 16

// Pool cache modes (AX_POOL_CACHE_MODE_E).
const (
	PoolCacheNonCached = iota
	PoolCacheCached
)

// InvalidPoolID is returned by pool creation on failure.
const InvalidPoolID = -1

var (
	PoolConfig = Struct("AX_POOL_CONFIG_T", []Field{
		{Name: "MetaSize", Type: U64, Alias: "meta_size"},
		{Name: "BlkSize", Type: U64, Alias: "blk_size"},
		{Name: "BlkCnt", Type: U32, Alias: "blk_cnt"},
		{Name: "IsMergeMode", Type: Bool, Alias: "is_merge_mode"},
		{Name: "CacheMode", Type: Enum, Alias: "cache_mode"},
		{Name: "PartitionName", Type: Chars(32), Alias: "partition_name"},
		{Name: "PoolName", Type: Chars(32), Alias: "pool_name"},
	})

	PoolFloorplan = Struct("AX_POOL_FLOORPLAN_T", []Field{
		{Name: "CommPool", Type: Array(PoolConfig, MaxCommonPools), Alias: "comm_pool"},
	})
)
