package model

//
// Data types exchanged with the skill platform APIs. Each type mirrors
// the wire format documented for the corresponding service; only the
// subset of the data model used by the shipped service clients lives
// here, since the full generated model is owned by the code generator.
//

// DeviceAddress is the full civic address configured for a device,
// returned by the device-settings API.
type DeviceAddress struct {
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	AddressLine3     string `json:"addressLine3"`
	City             string `json:"city"`
	CountryCode      string `json:"countryCode"`
	DistrictOrCounty string `json:"districtOrCounty"`
	PostalCode       string `json:"postalCode"`
	StateOrRegion    string `json:"stateOrRegion"`
}

// DeviceCountryAndPostalCode is the compact variant of the device
// address that only requires the coarse-grained address permission.
type DeviceCountryAndPostalCode struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

// HouseholdListsMetadata is the result of enumerating the household
// lists owned by the current customer.
type HouseholdListsMetadata struct {
	Lists []HouseholdListMetadata `json:"lists"`
}

// HouseholdListMetadata describes a single household list.
type HouseholdListMetadata struct {
	ListID string `json:"listId"`
	Name   string `json:"name"`
	State  string `json:"state"`
}

// HouseholdList is a household list along with a page of its items.
type HouseholdList struct {
	ListID  string              `json:"listId"`
	Name    string              `json:"name"`
	State   string              `json:"state"`
	Version int64               `json:"version"`
	Items   []HouseholdListItem `json:"items"`
}

// HouseholdListItem is a single item within a household list.
type HouseholdListItem struct {
	ID      string `json:"id"`
	Value   string `json:"value"`
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// CreateHouseholdListRequest asks the lists API to create a new list.
type CreateHouseholdListRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// CreateHouseholdListItemRequest adds an item to an existing list.
type CreateHouseholdListItemRequest struct {
	Value  string `json:"value"`
	Status string `json:"status"`
}

// Reminder is a reminder alert as stored by the reminders API.
type Reminder struct {
	AlertToken       string            `json:"alertToken"`
	CreatedTime      string            `json:"createdTime"`
	UpdatedTime      string            `json:"updatedTime"`
	Status           string            `json:"status"`
	Trigger          *ReminderTrigger  `json:"trigger,omitempty"`
	AlertInfo        *ReminderInfo     `json:"alertInfo,omitempty"`
	PushNotification *PushNotification `json:"pushNotification,omitempty"`
}

// ReminderTrigger describes when a reminder fires.
type ReminderTrigger struct {
	Type            string `json:"type"`
	ScheduledTime   string `json:"scheduledTime,omitempty"`
	OffsetInSeconds int64  `json:"offsetInSeconds,omitempty"`
	TimeZoneID      string `json:"timeZoneId,omitempty"`
}

// ReminderInfo carries the content spoken when a reminder fires.
type ReminderInfo struct {
	SpokenInfo *SpokenInfo `json:"spokenInfo,omitempty"`
}

// SpokenInfo is a list of per-locale reminder texts.
type SpokenInfo struct {
	Content []SpokenText `json:"content"`
}

// SpokenText is the reminder text for a single locale.
type SpokenText struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

// PushNotification configures whether a reminder also pushes.
type PushNotification struct {
	Status string `json:"status"`
}

// ReminderRequest creates or updates a reminder.
type ReminderRequest struct {
	RequestTime      string            `json:"requestTime"`
	Trigger          *ReminderTrigger  `json:"trigger"`
	AlertInfo        *ReminderInfo     `json:"alertInfo"`
	PushNotification *PushNotification `json:"pushNotification"`
}

// ReminderResponse acknowledges a reminder mutation.
type ReminderResponse struct {
	AlertToken string `json:"alertToken"`
	Status     string `json:"status"`
	Version    string `json:"version"`
	Href       string `json:"href"`
}

// RemindersList is the result of enumerating reminders.
type RemindersList struct {
	TotalCount string     `json:"totalCount"`
	Alerts     []Reminder `json:"alerts"`
}

// InSkillProductsResponse is a page of in-skill products.
type InSkillProductsResponse struct {
	InSkillProducts []InSkillProduct `json:"inSkillProducts"`
	IsTruncated     bool             `json:"isTruncated"`
	NextToken       string           `json:"nextToken"`
}

// InSkillProduct describes a purchasable product within a skill.
type InSkillProduct struct {
	ProductID              string `json:"productId"`
	ReferenceName          string `json:"referenceName"`
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	Summary                string `json:"summary"`
	Purchasable            string `json:"purchasable"`
	Entitled               string `json:"entitled"`
	EntitlementReason      string `json:"entitlementReason"`
	ActiveEntitlementCount int64  `json:"activeEntitlementCount"`
	PurchaseMode           string `json:"purchaseMode"`
}

// SkillMessagingRequest is the payload for sending a message to a
// skill on behalf of a specific user.
type SkillMessagingRequest struct {
	Data                map[string]interface{} `json:"data"`
	ExpiresAfterSeconds int64                  `json:"expiresAfterSeconds,omitempty"`
}

// ProactiveEventRequest publishes a proactive event.
type ProactiveEventRequest struct {
	TimeStamp           string                   `json:"timestamp"`
	ReferenceID         string                   `json:"referenceId"`
	ExpiryTime          string                   `json:"expiryTime"`
	Event               *ProactiveEvent          `json:"event"`
	LocalizedAttributes []map[string]interface{} `json:"localizedAttributes,omitempty"`
	RelevantAudience    *RelevantAudience        `json:"relevantAudience"`
}

// ProactiveEvent is the schema-qualified event payload.
type ProactiveEvent struct {
	Name    string                 `json:"name"`
	Payload map[string]interface{} `json:"payload"`
}

// RelevantAudience selects who receives a proactive event.
type RelevantAudience struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}
