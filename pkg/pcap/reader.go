package pcap

import (
	"Go2TrafficStats/internal/model"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
)

// Reader reads packets from a pcap file.
type Reader struct {
	file   *os.File
	handle *pcapgo.Reader
}

// NewReader creates a new pcap reader for the given file path.
func NewReader(filePath string) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrIO, err)
	}
	handle, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s is not a pcap file: %v", model.ErrIO, filePath, err)
	}
	return &Reader{file: f, handle: handle}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() {
	r.file.Close()
}

// CountPackets walks the capture in order and emits one record per period that saw
// at least one packet. Each packet timestamp is truncated to period and formatted
// in UTC with layout. A bucket is emitted as soon as a packet from a different
// period arrives, so an out-of-order capture can repeat a period.
func (r *Reader) CountPackets(period time.Duration, layout string, fn func(model.Record) error) error {
	if period <= 0 {
		return fmt.Errorf("period must be a positive duration, got %s", period)
	}

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	packetSource.Lazy = true
	packetSource.NoCopy = true

	var (
		bucket time.Time
		count  uint32
	)
	emit := func() error {
		if count == 0 {
			return nil
		}
		return fn(model.Record{Timestamp: bucket.Format(layout), Count: count})
	}

	for {
		packet, err := packetSource.NextPacket()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%w: reading packet: %v", model.ErrIO, err)
		}

		start := packet.Metadata().Timestamp.UTC().Truncate(period)
		if !start.Equal(bucket) {
			if err := emit(); err != nil {
				return err
			}
			bucket, count = start, 0
		}
		if count == math.MaxUint32 {
			return fmt.Errorf("period starting %s holds more than %d packets", bucket.Format(layout), uint32(math.MaxUint32))
		}
		count++
	}
	return emit()
}
