package knowledge

// Document is a static article in the built-in knowledge base.
type Document struct {
	Source  string
	Content string
}

// Chunk is a bounded slice of a document used as a retrieval unit.
type Chunk struct {
	ID      string
	Content string
	Source  string
}

const article1 = `Article 1: Introduction to Google Ads for Small Business

Google Ads is an auction-based advertising platform where businesses bid on
search keywords so their ads appear when potential customers are actively
looking for their products or services. For a small business, the most
important decision is not the bid itself but the intent of the keywords:
"emergency plumber near me" converts far better than "plumbing tips".

Budgeting is the question small businesses ask most. A sensible starting
budget is between 300 and 1500 dollars per month, or roughly 10 to 50
dollars per day, held steady for at least one month before judging results.
Spending less than 10 dollars per day rarely produces enough click data to
optimize against. Start with one tightly themed campaign, two or three ad
groups, and exact or phrase match keywords; broad match burns small budgets
quickly.

Quality Score matters as much as budget. Google rewards ads that match
their keywords and land on relevant pages with lower costs per click, so a
well-structured small account can outbid a sloppy large one. Track
conversions from day one, even if a conversion is only a phone call or a
contact form, because optimizing for clicks alone optimizes for spend, not
revenue.`

const article2 = `Article 2: Understanding Meta (Facebook) Ad Campaigns

Meta ads reach people while they browse rather than while they search, so
the job of the ad is to interrupt well. Campaigns are organized in three
layers: the campaign sets the objective (awareness, traffic, leads, or
sales), ad sets define the audience, placements, and budget, and the ads
themselves carry the creative.

Audience targeting is where Meta campaigns are won. Start with a custom
audience built from existing customers or website visitors, then let
lookalike audiences find similar people. Interest-based targeting is a
fallback, not a strategy. Retargeting warm audiences, people who visited a
product page or abandoned a cart, consistently delivers the cheapest
conversions of any digital channel.

Creative fatigue is the silent killer of Meta performance: the same image
shown to the same audience for weeks will see costs climb steadily. Plan to
refresh creative every two to three weeks, test one variable at a time, and
judge ads on cost per result rather than clicks or likes. Video and
carousel formats typically earn more attention than static images for the
same spend.`

const article3 = `Article 3: The Importance of Landing Pages

A landing page is a standalone page built for a single campaign with a
single action in mind: book a call, request a quote, buy a product. Sending
paid traffic to a homepage is the most common and most expensive mistake in
digital marketing, because a homepage offers a dozen paths and the visitor
takes none of them.

The core principle is message match. The headline of the landing page must
repeat the promise of the ad that was clicked; any gap between the two and
the visitor bounces within seconds. A strong landing page has one clear
headline, proof such as testimonials or customer counts, a form that asks
for as little as possible, and no navigation menu to leak visitors away.

Landing pages are also where conversion economics are decided. Doubling a
conversion rate from 2 to 4 percent halves the cost per lead across every
campaign pointed at the page, which is usually far cheaper than doubling
the ad budget. Test one element at a time, starting with the headline, and
let each test run long enough to reach a confident sample size.`

const article4 = `Article 4: UrbanClap Case Study

UrbanClap, later rebranded as Urban Company, grew from a home-services
startup in India into the largest marketplace of its kind by treating
digital marketing as a core discipline rather than an afterthought. Its
early growth leaned on Google Ads against high-intent searches such as
"bathroom cleaning service" while competitors still relied on classifieds
and word of mouth.

The company paired search campaigns with dedicated landing pages for each
service city, so an ad for salon services in Bangalore landed on a page
about salon services in Bangalore, not a generic homepage. This message
match kept acquisition costs low enough to scale into dozens of cities.

On social channels, UrbanClap used retargeting to reach users who had
browsed a service but not booked, recovering bookings at a fraction of the
cost of acquiring new users. The lesson for small businesses is that the
fundamentals, high-intent keywords, matched landing pages, and retargeting,
compound: none of them required a large brand budget, only disciplined
execution.`

// Builtin returns the four fixed marketing articles the service answers
// questions from. The knowledge base is defined at build time and never
// changes at runtime.
func Builtin() []Document {
	return []Document{
		{Source: "Article 1: Introduction to Google Ads", Content: article1},
		{Source: "Article 2: Understanding Meta Ads", Content: article2},
		{Source: "Article 3: The Importance of Landing Pages", Content: article3},
		{Source: "UrbanClap Case Study", Content: article4},
	}
}
