package bench

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// Stub of a bound handler
type Stub interface {
	Unbind()
}

// EventRegister bind handlers like func(CycleEvent), func(interface{}) receive every event
type EventRegister interface {
	OnEvent(fn interface{}) Stub
}

// EventDriver register and trigger events
type EventDriver interface {
	EventRegister
	Trigger(interface{})
}

// StartEvent before first case
type StartEvent struct {
	Cases []Case
}

// CycleEvent after every case
type CycleEvent struct {
	Index  int
	Total  int
	Result Result
}

// CompleteEvent after all cases
type CompleteEvent struct {
	Results []Result
	Elapsed time.Duration
}

// NewEventDriver create driver
func NewEventDriver() EventDriver {
	return &eventDrv{
		typToHandler: make(map[reflect.Type][]handler),
	}
}

type stub struct {
	unbind func()
}

func (s *stub) Unbind() {
	s.unbind()
}

type handler struct {
	id int32
	fn reflect.Value
}

type eventDrv struct {
	sync.RWMutex
	hid             int32
	typToHandler    map[reflect.Type][]handler
	wildcardHandler []handler
}

func (drv *eventDrv) OnEvent(h interface{}) Stub {
	typ := reflect.TypeOf(h)
	if typ == nil || typ.Kind() != reflect.Func || typ.NumIn() != 1 || typ.NumOut() != 0 {
		panic(fmt.Sprintf("event handler should be func(Event), got %v", typ))
	}
	drv.Lock()
	defer drv.Unlock()
	in := typ.In(0)
	drv.hid++
	id := drv.hid
	if in.Kind() == reflect.Interface {
		drv.wildcardHandler = append(drv.wildcardHandler, handler{id: id, fn: reflect.ValueOf(h)})
	} else {
		drv.typToHandler[in] = append(drv.typToHandler[in], handler{id: id, fn: reflect.ValueOf(h)})
	}
	return &stub{unbind: drv.unEvent(in, id)}
}

func (drv *eventDrv) unEvent(typ reflect.Type, id int32) func() {
	return func() {
		drv.Lock()
		defer drv.Unlock()
		drv.typToHandler[typ] = removeHandlerByID(drv.typToHandler[typ], id)
		drv.wildcardHandler = removeHandlerByID(drv.wildcardHandler, id)
	}
}

// Trigger call handlers synchronously, typed handlers first
func (drv *eventDrv) Trigger(evt interface{}) {
	if evt == nil {
		return
	}
	var handlers []handler
	drv.RLock()
	typ := reflect.TypeOf(evt)
	handlers = append(handlers, drv.typToHandler[typ]...)
	for _, h := range drv.wildcardHandler {
		if typ.Implements(h.fn.Type().In(0)) {
			handlers = append(handlers, h)
		}
	}
	drv.RUnlock()

	for _, h := range handlers {
		h.fn.Call([]reflect.Value{reflect.ValueOf(evt)})
	}
}

func removeHandlerByID(handlers []handler, id int32) []handler {
	var count int
	for i := 0; i < len(handlers); i++ {
		if handlers[i].id == id {
			count++
		} else if count != 0 {
			handlers[i-count] = handlers[i]
		}
	}
	return handlers[:len(handlers)-count]
}
