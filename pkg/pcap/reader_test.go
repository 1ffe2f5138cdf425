package pcap

import (
	"Go2TrafficStats/internal/model"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const layout = "2006-01-02T15:04:05"

// writeCapture writes one small TCP packet per timestamp.
func writeCapture(t *testing.T, stamps []time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create pcap file: %v", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("Failed to write pcap header: %v", err)
	}

	for i, ts := range stamps {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			SrcIP:    net.IP{10, 0, 0, 1},
			DstIP:    net.IP{10, 0, 0, 2},
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcp := &layers.TCP{
			SrcPort: layers.TCPPort(40000 + i),
			DstPort: 443,
			SYN:     true,
			Window:  14600,
		}
		tcp.SetNetworkLayerForChecksum(ip)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
		if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload([]byte("hello"))); err != nil {
			t.Fatalf("Failed to serialize layers: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     ts,
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := w.WritePacket(ci, buf.Bytes()); err != nil {
			t.Fatalf("Failed to write packet: %v", err)
		}
	}
	return path
}

func TestReader_CountPackets(t *testing.T) {
	base := time.Date(2021, 12, 1, 5, 0, 0, 0, time.UTC)
	path := writeCapture(t, []time.Time{
		base.Add(1 * time.Minute),
		base.Add(10 * time.Minute),
		base.Add(29 * time.Minute),
		base.Add(31 * time.Minute),
		// nothing between 05:30 and 07:00
		base.Add(2*time.Hour + 5*time.Second),
		base.Add(2*time.Hour + 6*time.Second),
	})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	var got []model.Record
	err = reader.CountPackets(30*time.Minute, layout, func(r model.Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("CountPackets failed: %v", err)
	}

	want := []model.Record{
		{Timestamp: "2021-12-01T05:00:00", Count: 3},
		{Timestamp: "2021-12-01T05:30:00", Count: 1},
		{Timestamp: "2021-12-01T07:00:00", Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestReader_CountPacketsEmptyCapture(t *testing.T) {
	reader, err := NewReader(writeCapture(t, nil))
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	calls := 0
	if err := reader.CountPackets(time.Minute, layout, func(model.Record) error { calls++; return nil }); err != nil {
		t.Fatalf("CountPackets failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no records from an empty capture, got %d", calls)
	}
}

func TestNewReader_NotAPcap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.txt")
	if err := os.WriteFile(path, []byte("2021-12-01T05:00:00 5\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := NewReader(path); err == nil {
		t.Fatal("Expected an error for a non-pcap file")
	}
}
