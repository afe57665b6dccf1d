package kvconfig

import (
	"encoding/binary"
	"net/netip"
	"strconv"
	"strings"
)

// defaultSubnet используется, когда маска в адресе не указана
const defaultSubnet = 24

// IPAddress хранит IPv4 адрес с необязательной маской подсети (a.b.c.d или a.b.c.d/m).
// Нулевое значение и результат разбора некорректной строки невалидны,
// их текстовая форма пустая строка.
type IPAddress struct {
	addr  netip.Addr
	mask  uint8
	valid bool
}

// ParseIPAddress разбирает адрес. Ошибка разбора не возвращается:
// результат просто невалиден, см. Valid.
func ParseIPAddress(s string) IPAddress {
	host, maskStr, hasMask := strings.Cut(strings.TrimSpace(s), "/")

	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is4() {
		return IPAddress{}
	}

	ip := IPAddress{addr: addr, valid: true}
	if !hasMask {
		return ip
	}

	m, err := strconv.Atoi(maskStr)
	if err != nil || m < 1 || m > 32 {
		return IPAddress{}
	}
	ip.mask = uint8(m)
	return ip
}

// Valid сообщает, был ли адрес успешно разобран
func (ip IPAddress) Valid() bool {
	return ip.valid
}

// String возвращает адрес в виде a.b.c.d[/m] или пустую строку для невалидного адреса
func (ip IPAddress) String() string {
	if !ip.valid {
		return ""
	}
	if ip.mask == 0 {
		return ip.addr.String()
	}
	return ip.addr.String() + "/" + strconv.Itoa(int(ip.mask))
}

// Addr возвращает четыре октета адреса
func (ip IPAddress) Addr() [4]byte {
	if !ip.valid {
		return [4]byte{}
	}
	return ip.addr.As4()
}

// Subnet возвращает длину маски, 24 если маска не указана
func (ip IPAddress) Subnet() uint8 {
	if ip.mask == 0 {
		return defaultSubnet
	}
	return ip.mask
}

// SubnetMask возвращает маску подсети в виде октетов (например 255.255.255.0)
func (ip IPAddress) SubnetMask() [4]byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], ^uint32(0)<<(32-uint32(ip.Subnet())))
	return out
}
