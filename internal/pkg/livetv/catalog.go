// Package livetv holds the static Jazz TV channel catalog.
package livetv

import "strings"

// Channel is one live TV channel entry.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	StreamURL string `json:"stream_url"`
	Category  string `json:"category"`
	Provider  string `json:"provider"`
	Active    bool   `json:"active"`
}

var channels = []Channel{
	// News
	{ID: "geo_news", Name: "Geo News", Logo: "https://jazztv.com.pk/images/channels/geo-news.webp", StreamURL: "https://jfrsgeo.cdn.jfrstvdemo.com/geonews/jfrstv_geo_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "ary_news", Name: "ARY News", Logo: "https://jazztv.com.pk/images/channels/ary-news.webp", StreamURL: "https://jfrsary.cdn.jfrstvdemo.com/arynews/jfrstv_ary_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "express_news", Name: "Express News", Logo: "https://jazztv.com.pk/images/channels/express-news.webp", StreamURL: "https://jfrsexp.cdn.jfrstvdemo.com/expressnews/jfrstv_express_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "samaa_tv", Name: "Samaa TV", Logo: "https://jazztv.com.pk/images/channels/samaa.webp", StreamURL: "https://jfrssamaa.cdn.jfrstvdemo.com/samaa/jfrstv_samaa_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "dunya_news", Name: "Dunya News", Logo: "https://jazztv.com.pk/images/channels/dunya-news.webp", StreamURL: "https://jfrsdunya.cdn.jfrstvdemo.com/dunyanews/jfrstv_dunya_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "92_news", Name: "92 News", Logo: "https://jazztv.com.pk/images/channels/92-news.webp", StreamURL: "https://jfrs92.cdn.jfrstvdemo.com/92news/jfrstv_92_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "bol_news", Name: "BOL News", Logo: "https://jazztv.com.pk/images/channels/bol-news.webp", StreamURL: "https://jfrsbol.cdn.jfrstvdemo.com/bolnews/jfrstv_bol_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	{ID: "hum_news", Name: "HUM News", Logo: "https://jazztv.com.pk/images/channels/hum-news.webp", StreamURL: "https://jfrshum.cdn.jfrstvdemo.com/humnews/jfrstv_hum_news_720p/playlist.m3u8", Category: "News", Provider: "JazzTV", Active: true},
	// Entertainment
	{ID: "hum_tv", Name: "HUM TV", Logo: "https://jazztv.com.pk/images/channels/hum-tv.webp", StreamURL: "https://jfrshum.cdn.jfrstvdemo.com/humtv/jfrstv_hum_tv_720p/playlist.m3u8", Category: "Entertainment", Provider: "JazzTV", Active: true},
	{ID: "ary_digital", Name: "ARY Digital", Logo: "https://jazztv.com.pk/images/channels/ary-digital.webp", StreamURL: "https://jfrsary.cdn.jfrstvdemo.com/arydigital/jfrstv_ary_digital_720p/playlist.m3u8", Category: "Entertainment", Provider: "JazzTV", Active: true},
	{ID: "geo_entertainment", Name: "Geo Entertainment", Logo: "https://jazztv.com.pk/images/channels/geo-entertainment.webp", StreamURL: "https://jfrsgeo.cdn.jfrstvdemo.com/geoent/jfrstv_geo_ent_720p/playlist.m3u8", Category: "Entertainment", Provider: "JazzTV", Active: true},
	{ID: "express_ent", Name: "Express Entertainment", Logo: "https://jazztv.com.pk/images/channels/express-ent.webp", StreamURL: "https://jfrsexp.cdn.jfrstvdemo.com/expressent/jfrstv_express_ent_720p/playlist.m3u8", Category: "Entertainment", Provider: "JazzTV", Active: true},
	// Sports
	{ID: "ptv_sports", Name: "PTV Sports", Logo: "https://jazztv.com.pk/images/channels/ptv-sports.webp", StreamURL: "https://jfrsptv.cdn.jfrstvdemo.com/ptvsports/jfrstv_ptv_sports_720p/playlist.m3u8", Category: "Sports", Provider: "JazzTV", Active: true},
	{ID: "ten_sports", Name: "Ten Sports", Logo: "https://jazztv.com.pk/images/channels/ten-sports.webp", StreamURL: "https://jfrsten.cdn.jfrstvdemo.com/tensports/jfrstv_ten_sports_720p/playlist.m3u8", Category: "Sports", Provider: "JazzTV", Active: true},
	// Religious
	{ID: "madani_channel", Name: "Madani Channel", Logo: "https://jazztv.com.pk/images/channels/madani.webp", StreamURL: "https://jfrsmadani.cdn.jfrstvdemo.com/madani/jfrstv_madani_720p/playlist.m3u8", Category: "Religious", Provider: "JazzTV", Active: true},
	{ID: "qtv", Name: "QTV", Logo: "https://jazztv.com.pk/images/channels/qtv.webp", StreamURL: "https://jfrsqtv.cdn.jfrstvdemo.com/qtv/jfrstv_qtv_720p/playlist.m3u8", Category: "Religious", Provider: "JazzTV", Active: true},
	// Kids
	{ID: "cartoon_network", Name: "Cartoon Network", Logo: "https://jazztv.com.pk/images/channels/cartoon-network.webp", StreamURL: "https://jfrscn.cdn.jfrstvdemo.com/cn/jfrstv_cn_720p/playlist.m3u8", Category: "Kids", Provider: "JazzTV", Active: true},
	{ID: "nick", Name: "Nickelodeon", Logo: "https://jazztv.com.pk/images/channels/nick.webp", StreamURL: "https://jfrsnick.cdn.jfrstvdemo.com/nick/jfrstv_nick_720p/playlist.m3u8", Category: "Kids", Provider: "JazzTV", Active: true},
}

// All returns the full channel catalog.
func All() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

// ByCategory returns channels in a category, case-insensitive.
func ByCategory(category string) []Channel {
	out := make([]Channel, 0)
	for _, ch := range channels {
		if strings.EqualFold(ch.Category, category) {
			out = append(out, ch)
		}
	}
	return out
}

// ByID returns a channel by id.
func ByID(id string) (Channel, bool) {
	for _, ch := range channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return Channel{}, false
}
