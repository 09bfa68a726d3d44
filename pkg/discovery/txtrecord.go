package discovery

import (
	"fmt"
	"sort"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeServiceTXT creates the TXT records announced for info.
func EncodeServiceTXT(info *ServiceInfo) TXTRecordMap {
	txt := TXTRecordMap{TXTKeyAPI: info.API}
	if txt[TXTKeyAPI] == "" {
		txt[TXTKeyAPI] = DefaultAPI
	}
	if info.VSSVersion != "" {
		txt[TXTKeyVSS] = info.VSSVersion
	}
	if info.AppID != "" {
		txt[TXTKeyApp] = info.AppID
	}
	return txt
}

// DecodeServiceTXT parses announced TXT records. Unknown keys are ignored.
func DecodeServiceTXT(txt TXTRecordMap) (*ServiceInfo, error) {
	api, ok := txt[TXTKeyAPI]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyAPI)
	}
	if api == "" || strings.ContainsAny(api, " /") {
		return nil, fmt.Errorf("%w: api %q", ErrInvalidTXTRecord, api)
	}
	return &ServiceInfo{
		API:        api,
		VSSVersion: txt[TXTKeyVSS],
		AppID:      txt[TXTKeyApp],
	}, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to sorted "key=value" strings.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses "key=value" strings into a TXTRecordMap. A
// string without "=" is a key with an empty value.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k != "" {
			txt[k] = v
		}
	}
	return txt
}

// ValidateInstanceName checks that name fits one DNS label.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInstanceName)
	}
	if len(name) > MaxInstanceNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidInstanceName, MaxInstanceNameLen)
	}
	return nil
}
