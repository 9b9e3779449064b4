package uvc

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Request is a UVC class-specific request code.
type Request uint8

const (
	SetCur  Request = 0x01
	GetCur  Request = 0x81
	GetMin  Request = 0x82
	GetMax  Request = 0x83
	GetRes  Request = 0x84
	GetLen  Request = 0x85
	GetInfo Request = 0x86
	GetDef  Request = 0x87
)

// String returns the request mnemonic.
func (r Request) String() string {
	switch r {
	case SetCur:
		return "SET_CUR"
	case GetCur:
		return "GET_CUR"
	case GetMin:
		return "GET_MIN"
	case GetMax:
		return "GET_MAX"
	case GetRes:
		return "GET_RES"
	case GetLen:
		return "GET_LEN"
	case GetInfo:
		return "GET_INFO"
	case GetDef:
		return "GET_DEF"
	default:
		return fmt.Sprintf("Request(0x%02x)", uint8(r))
	}
}

// IsGet reports whether r transfers data from the device to the host.
func (r Request) IsGet() bool {
	return r&0x80 != 0
}

// bmRequestType values for class requests addressed to an interface.
const (
	RequestTypeSet uint8 = 0x21 // host to device
	RequestTypeGet uint8 = 0xA1 // device to host
)

// SetupPacketSize is the size of a serialized SetupPacket.
const SetupPacketSize = 8

// SetupPacket is a USB control transfer setup packet.
type SetupPacket struct {
	RequestType uint8
	Request     Request
	Value       uint16
	Index       uint16
	Length      uint16
}

// Bytes serializes the packet in USB (little-endian) order.
func (p SetupPacket) Bytes() []byte {
	b := make([]byte, SetupPacketSize)
	b[0] = p.RequestType
	b[1] = uint8(p.Request)
	binary.LittleEndian.PutUint16(b[2:4], p.Value)
	binary.LittleEndian.PutUint16(b[4:6], p.Index)
	binary.LittleEndian.PutUint16(b[6:8], p.Length)

	return b
}

// String renders the packet for logs and the CLI.
func (p SetupPacket) String() string {
	return fmt.Sprintf("%s bmRequestType=0x%02x wValue=0x%04x wIndex=0x%04x wLength=%d",
		p.Request, p.RequestType, p.Value, p.Index, p.Length)
}

// Setup builds the setup packet for req on the given video control
// interface. A unitID of zero selects the unit's DefaultID.
//
// wLength is the payload size of the control, except for GET_INFO (1 byte)
// and GET_LEN (2 bytes).
func (c *Control) Setup(req Request, unitID, iface uint8) SetupPacket {
	if unitID == 0 {
		unitID = c.unit.DefaultID()
	}

	p := SetupPacket{
		RequestType: RequestTypeSet,
		Request:     req,
		Value:       uint16(c.selector) << 8,
		Index:       uint16(unitID)<<8 | uint16(iface),
		Length:      uint16(c.schema.ByteSize()),
	}
	if req.IsGet() {
		p.RequestType = RequestTypeGet
	}

	switch req {
	case GetInfo:
		p.Length = 1
	case GetLen:
		p.Length = 2
	}

	return p
}

// ParseRequest parses a request mnemonic such as "GET_CUR" or "get-cur".
func ParseRequest(s string) (Request, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, r := range []Request{SetCur, GetCur, GetMin, GetMax, GetRes, GetLen, GetInfo, GetDef} {
		if r.String() == name {
			return r, nil
		}
	}

	return 0, fmt.Errorf("unknown request %q", s)
}
