package plugins_azurecli

import "encoding/json"

// Struct representing the parts of `az vm availability-set show` the tool reads
type availabilitySet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  struct {
		Name string `json:"name"`
	} `json:"sku"`
}

// Struct representing one entry of instanceView.statuses
type instanceStatus struct {
	Code          string `json:"code"`
	DisplayStatus string `json:"displayStatus"`
}

// Struct representing `az group export` output when the CLI wraps the template with its errors
type exportEnvelope struct {
	Template json.RawMessage `json:"template"`
	Error    json.RawMessage `json:"error"`
}
