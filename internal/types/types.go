package types

// EntityID — идентификатор сущности в ECS. Ноль означает "нет сущности".
type EntityID uint64

// NoEntity — пустая ссылка на сущность
const NoEntity EntityID = 0

// Direction — горизонтальное намерение движения
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionNone  Direction = "none"
)

// DirectionY — вертикальное намерение движения
type DirectionY string

const (
	DirectionUp    DirectionY = "up"
	DirectionDown  DirectionY = "down"
	DirectionYNone DirectionY = "none"
)

// MovementType меняет правила физики для существа
type MovementType string

const (
	MovementWalking   MovementType = "walking"
	MovementClimbing  MovementType = "climbing"
	MovementCrouching MovementType = "crouching"
	MovementFlying    MovementType = "flying"
)

// MonsterType — вид монстра
type MonsterType string

const (
	MonsterGoblin   MonsterType = "goblin"
	MonsterOrc      MonsterType = "orc"
	MonsterTroll    MonsterType = "troll"
	MonsterArcher   MonsterType = "archer"
	MonsterSkeleton MonsterType = "skeleton"
)

// Intelligence — уровень интеллекта монстра
type Intelligence string

const (
	IntelligenceDumb   Intelligence = "dumb"
	IntelligenceNormal Intelligence = "normal"
	IntelligenceSmart  Intelligence = "smart"
)

// AttackMode — ближний или дальний бой
type AttackMode string

const (
	AttackMelee  AttackMode = "melee"
	AttackRanged AttackMode = "ranged"
)

// MonsterRangedAttack — переопределение дальней атаки монстра
type MonsterRangedAttack string

const (
	RangedArrow       MonsterRangedAttack = "arrow"
	RangedHomingArrow MonsterRangedAttack = "homingArrow"
)

// ProjectileType — тег снаряда, влияет на отрисовку и баллистику
type ProjectileType string

const (
	ProjectileArrow  ProjectileType = "arrow"
	ProjectileKnife  ProjectileType = "knife"
	ProjectileHoming ProjectileType = "homing"
	ProjectileBomb   ProjectileType = "bomb"
)

// ColorTheme — цветовая схема снаряда
type ColorTheme string

const (
	ThemeRed   ColorTheme = "red"
	ThemeBlue  ColorTheme = "blue"
	ThemeGreen ColorTheme = "green"
)

// PlatformStyle — стиль платформы, задаёт трение и множитель скорости по умолчанию
type PlatformStyle string

const (
	StyleGrass PlatformStyle = "grass"
	StyleDirt  PlatformStyle = "dirt"
	StyleStone PlatformStyle = "stone"
	StyleWood  PlatformStyle = "wood"
	StyleIce   PlatformStyle = "ice"
	StyleGlue  PlatformStyle = "glue"
)

// AdventurerClass — класс игрока
type AdventurerClass string

const (
	ClassRogue   AdventurerClass = "rogue"
	ClassWarrior AdventurerClass = "warrior"
	ClassMage    AdventurerClass = "mage"
)

// AbilityName — имя особой способности
type AbilityName string

const (
	AbilityGuidedArrow AbilityName = "Guided Arrow"
	AbilityBomb        AbilityName = "Bomb"
)

// ItemSlot — слот экипировки
type ItemSlot string

const (
	SlotHead     ItemSlot = "head"
	SlotChest    ItemSlot = "chest"
	SlotLegs     ItemSlot = "legs"
	SlotFeet     ItemSlot = "feet"
	SlotHands    ItemSlot = "hands"
	SlotMainHand ItemSlot = "mainHand"
	SlotOffHand  ItemSlot = "offHand"
	SlotRing     ItemSlot = "ring"
	SlotNecklace ItemSlot = "necklace"
)

// ItemType — категория предмета
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemConsumable ItemType = "consumable"
	ItemMisc       ItemType = "misc"
)

// ItemRarity — редкость предмета
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// WeaponType — тип оружия
type WeaponType string

const (
	WeaponDagger WeaponType = "dagger"
	WeaponBow    WeaponType = "bow"
	WeaponWand   WeaponType = "wand"
)

// PowerupKind — вид бонуса
type PowerupKind string

const (
	PowerupHealing PowerupKind = "healing"
	PowerupItem    PowerupKind = "item"
)
