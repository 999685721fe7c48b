package axcl

import (
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"
)

// pool entry points live in libaxcl_sys.
type poolFuncs struct {
	SetConfig   func(plan unsafe.Pointer) int32
	GetConfig   func(plan unsafe.Pointer) int32
	Init        func() int32
	Exit        func() int32
	CreatePool  func(cfg unsafe.Pointer) uint32
	DestroyPool func(poolID uint32) int32
}

func (f *poolFuncs) symbols() []symbol {
	return []symbol{
		{"AXCL_POOL_SetConfig", &f.SetConfig},
		{"AXCL_POOL_GetConfig", &f.GetConfig},
		{"AXCL_POOL_Init", &f.Init},
		{"AXCL_POOL_Exit", &f.Exit},
		{"AXCL_POOL_CreatePool", &f.CreatePool},
		{"AXCL_POOL_DestroyPool", &f.DestroyPool},
	}
}

// Pool exposes the common and private block pools.
type Pool struct {
	b  *Binding
	fn poolFuncs
}

// SetConfig installs the common pool floorplan from a list of
// AX_POOL_CONFIG_T dicts.
func (p *Pool) SetConfig(pools []Dict) error {
	const name = "AXCL_POOL_SetConfig"
	if err := p.b.ready(SubsystemSys, name, p.fn.SetConfig != nil); err != nil {
		return err
	}
	r, err := p.b.encode(name, PoolFloorplan, Dict{"comm_pool": pools})
	if err != nil {
		return err
	}
	ret := p.fn.SetConfig(r.Pointer())
	runtime.KeepAlive(r)
	return p.b.check(name, ret)
}

// Config returns the configured pools, skipping empty slots.
func (p *Pool) Config() ([]Dict, error) {
	const name = "AXCL_POOL_GetConfig"
	if err := p.b.ready(SubsystemSys, name, p.fn.GetConfig != nil); err != nil {
		return nil, err
	}
	r := NewRecord(PoolFloorplan)
	ret := p.fn.GetConfig(r.Pointer())
	runtime.KeepAlive(r)
	if err := p.b.check(name, ret); err != nil {
		return nil, err
	}
	d, err := p.b.decode(name, r)
	if err != nil {
		return nil, err
	}
	var out []Dict
	for _, e := range d["comm_pool"].([]any) {
		cfg := e.(Dict)
		if cfg["blk_cnt"].(int64) == 0 {
			continue
		}
		out = append(out, cfg)
	}
	return out, nil
}

// Init creates the common pools.
func (p *Pool) Init() error {
	const name = "AXCL_POOL_Init"
	if err := p.b.ready(SubsystemSys, name, p.fn.Init != nil); err != nil {
		return err
	}
	return p.b.check(name, p.fn.Init())
}

// Exit destroys every pool.
func (p *Pool) Exit() error {
	const name = "AXCL_POOL_Exit"
	if err := p.b.ready(SubsystemSys, name, p.fn.Exit != nil); err != nil {
		return err
	}
	return p.b.check(name, p.fn.Exit())
}

// Create makes a private pool from an AX_POOL_CONFIG_T dict.
func (p *Pool) Create(cfg Dict) (uint32, error) {
	const name = "AXCL_POOL_CreatePool"
	if err := p.b.ready(SubsystemSys, name, p.fn.CreatePool != nil); err != nil {
		return 0, err
	}
	r, err := p.b.encode(name, PoolConfig, cfg)
	if err != nil {
		return 0, err
	}
	id := p.fn.CreatePool(r.Pointer())
	runtime.KeepAlive(r)
	if int32(id) == InvalidPoolID {
		p.b.log.Debug("native call failed", zap.String("fn", name))
		return 0, fmt.Errorf("%s: invalid pool id", name)
	}
	return id, nil
}

// Destroy releases a private pool.
func (p *Pool) Destroy(poolID uint32) error {
	const name = "AXCL_POOL_DestroyPool"
	if err := p.b.ready(SubsystemSys, name, p.fn.DestroyPool != nil); err != nil {
		return err
	}
	return p.b.check(name, p.fn.DestroyPool(poolID))
}
