package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ListCommonAddressToListString converts a list of common.address to list of string
func ListCommonAddressToListString(addresses []common.Address) []string {
	addressesString := make([]string, len(addresses))
	for i, address := range addresses {
		addressesString[i] = address.Hex()
	}
	return addressesString
}

// ListStringToListCommonAddress converts a list of strings to list of common.address
func ListStringToListCommonAddress(addresses []string) []common.Address {
	addressesCommon := make([]common.Address, len(addresses))
	for i, address := range addresses {
		addressesCommon[i] = common.HexToAddress(address)
	}
	return addressesCommon
}

// ListCommonAddressesToString converts a list of common.address to string
func ListCommonAddressesToString(addresses []common.Address) string {
	addressesString := ListCommonAddressToListString(addresses)
	return strings.Join(addressesString, ",")
}

// StringToCommonAddressesList converts a comma joined string to a list of
// common.address
func StringToCommonAddressesList(addresses string) []common.Address {
	if addresses == "" {
		return []common.Address{}
	}
	addressesString := strings.Split(addresses, ",")
	return ListStringToListCommonAddress(addressesString)
}
