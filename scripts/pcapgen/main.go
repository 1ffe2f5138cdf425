package main

import (
	"flag"
	"log"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// pcapgen writes a synthetic capture whose packet rate follows a daily curve,
// so that pcap-counts produces a count log with visible peaks and quiet periods.
func main() {
	outputFile := flag.String("o", "test.pcap", "Output pcap file path")
	packetCount := flag.Int("c", 1000, "Number of packets to generate")
	start := flag.String("start", "2021-12-01T00:00:00", "Capture start time (UTC)")
	span := flag.Duration("span", 72*time.Hour, "Time span covered by the capture")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	startTime, err := time.Parse("2006-01-02T15:04:05", *start)
	if err != nil {
		log.Fatalf("Invalid start time: %v", err)
	}
	if *packetCount <= 0 || *span <= 0 {
		log.Fatalf("Packet count and span must be positive")
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	pcapWriter := pcapgo.NewWriter(f)
	if err := pcapWriter.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatalf("Failed to write pcap header: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Generating %d packets over %s into %s...", *packetCount, *span, *outputFile)

	// Packets are written in time order; the gap shrinks during daytime hours.
	meanGap := *span / time.Duration(*packetCount)
	ts := startTime
	for i := 0; i < *packetCount; i++ {
		gap := time.Duration(rng.ExpFloat64() * float64(meanGap))
		if h := ts.Hour(); h < 6 || h >= 22 {
			gap *= 4
		}
		ts = ts.Add(gap)

		srcIP := net.IP{10, byte(rng.Intn(256)), byte(rng.Intn(256)), byte(rng.Intn(256))}
		dstIP := net.IP{192, 168, byte(rng.Intn(256)), byte(rng.Intn(256))}
		payloadSize := rng.Intn(1400) + 50

		ethLayer := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ipLayer := &layers.IPv4{
			SrcIP:    srcIP,
			DstIP:    dstIP,
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcpLayer := &layers.TCP{
			SrcPort: layers.TCPPort(rng.Intn(65535-1024) + 1024),
			DstPort: 443,
			Seq:     rng.Uint32(),
			SYN:     true,
			Window:  14600,
		}
		tcpLayer.SetNetworkLayerForChecksum(ipLayer)

		payload := make([]byte, payloadSize)
		rng.Read(payload)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{
			ComputeChecksums: true,
			FixLengths:       true,
		}
		if err := gopacket.SerializeLayers(buf, opts, ethLayer, ipLayer, tcpLayer, gopacket.Payload(payload)); err != nil {
			log.Fatalf("Failed to serialize layers: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     ts,
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := pcapWriter.WritePacket(ci, buf.Bytes()); err != nil {
			log.Fatalf("Failed to write packet: %v", err)
		}
	}

	log.Printf("Successfully generated %d packets into %s, last at %s.", *packetCount, *outputFile, ts.Format(time.RFC3339))
}
