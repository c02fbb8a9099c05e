package events

// Record is one published event. Seq increases across frames and is never reused.
type Record struct {
	Seq     uint64
	Frame   uint64
	Payload any
}

// Bus is an ordered, single-threaded event queue. Events published during frame N are
// visible to every system that runs later in frame N and stay readable through Since
// until frame N+1 ends.
type Bus struct {
	records []Record
	frame   uint64
	seq     uint64
	start   int // index of the first record of the current frame
}

func NewBus() *Bus {
	return &Bus{
		records: make([]Record, 0, 128),
	}
}

// Advance starts a new frame, dropping everything older than the previous frame.
func (b *Bus) Advance(frame uint64) {
	keep := 0
	for i := range b.records {
		if b.records[i].Frame+1 >= frame {
			b.records[keep] = b.records[i]
			keep++
		}
	}
	for i := keep; i < len(b.records); i++ {
		b.records[i] = Record{}
	}
	b.records = b.records[:keep]
	b.frame = frame
	b.start = len(b.records)
}

// Frame returns the frame the bus is collecting for.
func (b *Bus) Frame() uint64 {
	return b.frame
}

// LastSeq returns the sequence number of the newest record, 0 when nothing was published.
func (b *Bus) LastSeq() uint64 {
	return b.seq
}

// Emit appends an event. It never blocks and never drops.
func Emit[T any](b *Bus, event T) {
	b.seq++
	b.records = append(b.records, Record{Seq: b.seq, Frame: b.frame, Payload: event})
}

// Each visits the current frame's events of type T in publish order. Events emitted by
// fn are visited too.
func Each[T any](b *Bus, fn func(T)) {
	for i := b.start; i < len(b.records); i++ {
		if ev, ok := b.records[i].Payload.(T); ok {
			fn(ev)
		}
	}
}

// Count returns the number of current-frame events of type T.
func Count[T any](b *Bus) int {
	n := 0
	Each(b, func(T) { n++ })
	return n
}

// Since visits every retained record with Seq > seq and returns the newest Seq seen,
// or seq when there was nothing new.
func (b *Bus) Since(seq uint64, fn func(Record)) uint64 {
	last := seq
	for i := 0; i < len(b.records); i++ {
		r := b.records[i]
		if r.Seq <= seq {
			continue
		}
		fn(r)
		last = r.Seq
	}
	return last
}

// Len returns the number of retained records.
func (b *Bus) Len() int {
	return len(b.records)
}
