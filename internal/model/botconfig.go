// Package model содержит модели данных платформы.
//
// Группа: BOT - Конфигурация Discord-бота
// Содержит: BotConfig, BotFeatures, CustomCommand, TicketPanel, Embed
package model

// BotConfig представляет конфигурацию Discord-бота
type BotConfig struct {
	Token           string          `json:"token"`
	ClientID        string          `json:"clientId"`
	AvatarURL       string          `json:"avatarUrl"`
	BannerURL       string          `json:"bannerUrl"`
	ScraperEndpoint string          `json:"scraperEndpoint"`
	Status          BotStatus       `json:"status"`
	Features        BotFeatures     `json:"features"`
	CustomCommands  []CustomCommand `json:"customCommands"`
	Embeds          []Embed         `json:"embeds"`
	SyncedChannels  []string        `json:"syncedChannels,omitempty"`
	SyncedRoles     []string        `json:"syncedRoles,omitempty"`
}

// BotStatus представляет настройку статуса бота
type BotStatus struct {
	Enabled      bool   `json:"enabled"`
	ActivityType string `json:"activityType"`
	Text         string `json:"text"`
}

// BotFeatures представляет набор функций бота
type BotFeatures struct {
	WelcomeMessage WelcomeConfig    `json:"welcomeMessage"`
	Moderation     ModerationConfig `json:"moderation"`
	TicketSystem   TicketConfig     `json:"ticketSystem"`
	ImageScraper   bool             `json:"imageScraper"`
	Logging        LoggingConfig    `json:"logging"`
	Leveling       LevelingConfig   `json:"leveling"`
	ReactionRoles  ReactionRoles    `json:"reactionRoles"`
	Music          MusicConfig      `json:"music"`
	Birthdays      BirthdayConfig   `json:"birthdays"`
	Suggestions    SuggestionConfig `json:"suggestions"`
	Starboard      StarboardConfig  `json:"starboard"`
	Verification   VerifyConfig     `json:"verification"`
}

// WelcomeConfig представляет настройку приветственных сообщений
type WelcomeConfig struct {
	Enabled    bool         `json:"enabled"`
	Channel    string       `json:"channel"`
	Message    string       `json:"message"`
	SendCard   bool         `json:"sendCard"`
	CardConfig CardConfig   `json:"cardConfig"`
	Leave      LeaveConfig  `json:"leaveMessage"`
	JoinRoles  []string     `json:"joinRoles"`
}

// CardConfig представляет оформление карточки
type CardConfig struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Title           string `json:"title,omitempty"`
	BarColor        string `json:"barColor,omitempty"`
}

// LeaveConfig представляет настройку прощальных сообщений
type LeaveConfig struct {
	Enabled bool   `json:"enabled"`
	Channel string `json:"channel"`
	Message string `json:"message"`
}

// ModerationConfig представляет настройку модерации
type ModerationConfig struct {
	Enabled        bool           `json:"enabled"`
	AdminRole      string         `json:"adminRole"`
	AutoModeration AutoModeration `json:"autoModeration"`
}

// AutoModeration представляет настройку автоматической модерации
type AutoModeration struct {
	Enabled     bool     `json:"enabled"`
	BannedWords []string `json:"bannedWords"`
	AntiSpam    bool     `json:"antiSpam"`
	AntiLink    bool     `json:"antiLink"`
}

// TicketConfig представляет настройку системы тикетов
type TicketConfig struct {
	Enabled           bool          `json:"enabled"`
	Transcripts       bool          `json:"transcripts"`
	TranscriptChannel string        `json:"transcriptChannel"`
	Panels            []TicketPanel `json:"panels"`
}

// TicketPanel представляет панель создания тикетов
type TicketPanel struct {
	ID             string   `json:"id"`
	Channel        string   `json:"channel"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ButtonText     string   `json:"buttonText"`
	ButtonEmoji    string   `json:"buttonEmoji"`
	Category       string   `json:"category"`
	SupportRoles   []string `json:"supportRoles"`
	WelcomeMessage string   `json:"welcomeMessage"`
}

// LoggingConfig представляет настройку журнала действий
type LoggingConfig struct {
	Enabled bool   `json:"enabled"`
	Channel string `json:"channel"`
}

// LevelingConfig представляет настройку системы уровней
type LevelingConfig struct {
	Enabled        bool         `json:"enabled"`
	LevelUpMessage string       `json:"levelUpMessage"`
	RoleRewards    []RoleReward `json:"roleRewards"`
	VoiceXPRate    int          `json:"voiceXpRate"`
	CardConfig     CardConfig   `json:"cardConfig"`
}

// RoleReward представляет награду за уровень
type RoleReward struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	RoleName string `json:"roleName"`
}

// ReactionRoles представляет настройку ролей по реакциям
type ReactionRoles struct {
	Enabled bool                 `json:"enabled"`
	Configs []ReactionRoleConfig `json:"configs"`
}

// ReactionRoleConfig представляет привязку реакции к роли
type ReactionRoleConfig struct {
	ID        string `json:"id"`
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
	RoleName  string `json:"roleName"`
}

// MusicConfig представляет настройку музыкального модуля
type MusicConfig struct {
	Enabled bool   `json:"enabled"`
	DJRole  string `json:"djRole"`
}

// BirthdayConfig представляет настройку поздравлений
type BirthdayConfig struct {
	Enabled     bool   `json:"enabled"`
	Channel     string `json:"channel"`
	WishMessage string `json:"wishMessage"`
}

// SuggestionConfig представляет настройку предложений
type SuggestionConfig struct {
	Enabled     bool   `json:"enabled"`
	Channel     string `json:"channel"`
	UpvoteEmoji string `json:"upvoteEmoji"`
	DownEmoji   string `json:"downvoteEmoji"`
}

// StarboardConfig представляет настройку starboard
type StarboardConfig struct {
	Enabled   bool   `json:"enabled"`
	Channel   string `json:"channel"`
	StarEmoji string `json:"starEmoji"`
	StarCount int    `json:"starCount"`
}

// VerifyConfig представляет настройку верификации
type VerifyConfig struct {
	Enabled      bool   `json:"enabled"`
	Channel      string `json:"channel"`
	VerifiedRole string `json:"verifiedRole"`
}

// CustomCommand представляет пользовательскую команду
type CustomCommand struct {
	ID       string `json:"id"`
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
}

// Embed представляет пользовательский embed
type Embed struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       string       `json:"color"`
	Footer      string       `json:"footer"`
	Fields      []EmbedField `json:"fields"`
}

// EmbedField представляет поле embed
type EmbedField struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// DefaultBotConfig возвращает конфигурацию нового бота
func DefaultBotConfig() BotConfig {
	return BotConfig{
		ScraperEndpoint: "https://api.bbdbuy.com/scrape",
		Status:          BotStatus{Enabled: false, ActivityType: "playing"},
		Features: BotFeatures{
			WelcomeMessage: WelcomeConfig{
				Enabled:    true,
				Channel:    "#general",
				Message:    "Welcome {user} to the server!",
				CardConfig: CardConfig{BackgroundColor: "#2c2f33", TextColor: "#ffffff", Title: "Welcome!"},
				Leave:      LeaveConfig{Channel: "#general", Message: "{user} has left the server."},
				JoinRoles:  []string{},
			},
			Moderation: ModerationConfig{
				Enabled:        true,
				AdminRole:      "Moderator",
				AutoModeration: AutoModeration{BannedWords: []string{}},
			},
			TicketSystem: TicketConfig{
				Enabled:           true,
				Transcripts:       true,
				TranscriptChannel: "transcripts",
				Panels:            []TicketPanel{},
			},
			Logging: LoggingConfig{Enabled: true, Channel: "bot-logs"},
			Leveling: LevelingConfig{
				LevelUpMessage: "Congrats {user}, you reached level {level}!",
				RoleRewards:    []RoleReward{},
				VoiceXPRate:    10,
				CardConfig:     CardConfig{BackgroundColor: "#23272A", TextColor: "#FFFFFF", BarColor: "#7289DA"},
			},
			ReactionRoles: ReactionRoles{Configs: []ReactionRoleConfig{}},
			Music:         MusicConfig{DJRole: "DJ"},
			Birthdays:     BirthdayConfig{Channel: "#birthdays", WishMessage: "Happy Birthday {user}!"},
			Suggestions:   SuggestionConfig{Channel: "#suggestions", UpvoteEmoji: "👍", DownEmoji: "👎"},
			Starboard:     StarboardConfig{Channel: "#starboard", StarEmoji: "⭐", StarCount: 5},
			Verification:  VerifyConfig{Channel: "#verify", VerifiedRole: "Member"},
		},
		CustomCommands: []CustomCommand{},
		Embeds:         []Embed{},
	}
}
