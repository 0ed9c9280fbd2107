package models

// CallRecord is one ledger entry for a paired session. Duration stays unset
// until a participant reports the call over, so an open call is any record
// without a duration attribute.
type CallRecord struct {
	CallID       string   `dynamodbav:"callId"`
	Participants []string `dynamodbav:"participants"`
	ChannelName  string   `dynamodbav:"channelName"`
	CreatedAt    string   `dynamodbav:"createdAt"`
	Duration     *int     `dynamodbav:"duration,omitempty"`
}

// CallRecordsTable is the DynamoDB table name for call records
const CallRecordsTable = "CallRecords"
