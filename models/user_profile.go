package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID    string `dynamodbav:"userId"`
	FullName  string `dynamodbav:"fullName,omitempty"`
	EmailID   string `dynamodbav:"emailId,omitempty"`
	Gender    string `dynamodbav:"gender,omitempty"`
	AvatarKey string `dynamodbav:"avatarKey,omitempty"`
	PushToken string `dynamodbav:"pushToken,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
